// ABOUTME: Directory CLI commands
// ABOUTME: Implements users search, profile, skills, and hackathons listings

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Aditya-web3/hack-team-up-now/internal/match"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Search for teammates",
	Long: `List users matching every given filter.

Multiple --skill flags match users with any of those skills. Users whose
location is Online always pass --location.`,
	Args: cobra.NoArgs,
	RunE: runUsers,
}

var profileCmd = &cobra.Command{
	Use:   "profile <user>",
	Short: "Show a user profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List all skills",
	Args:  cobra.NoArgs,
	RunE:  runSkills,
}

var hackathonsCmd = &cobra.Command{
	Use:   "hackathons",
	Short: "List upcoming hackathons",
	Args:  cobra.NoArgs,
	RunE:  runHackathons,
}

var (
	skillFilter     []string
	locationFilter  string
	hackathonFilter string
	onlyAvailable   bool
	onlyUnavailable bool
)

func init() {
	rootCmd.AddCommand(usersCmd, profileCmd, skillsCmd, hackathonsCmd)

	usersCmd.Flags().StringArrayVar(&skillFilter, "skill", nil, "skill id (repeatable)")
	usersCmd.Flags().StringVar(&locationFilter, "location", "", "location substring")
	usersCmd.Flags().StringVar(&hackathonFilter, "hackathon", "", "hackathon id")
	usersCmd.Flags().BoolVar(&onlyAvailable, "available", false, "only users available for a team")
	usersCmd.Flags().BoolVar(&onlyUnavailable, "unavailable", false, "only users not looking for a team")
	usersCmd.MarkFlagsMutuallyExclusive("available", "unavailable")
}

func runUsers(cmd *cobra.Command, args []string) error {
	filter := models.SearchFilter{
		Skills:            skillFilter,
		Location:          locationFilter,
		HackathonInterest: hackathonFilter,
		Availability:      models.AvailabilityFromFlag(onlyAvailable),
	}
	if onlyUnavailable {
		filter.Availability = models.RequireUnavailable
	}

	users, err := svc.SearchUsers(commandContext(cmd), filter)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No teammates found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tAVAILABLE\tSKILLS")
	for _, u := range users {
		available := "no"
		if u.Available {
			available = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Location, available, skillNames(u.Skills))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if clauses := match.Clauses(filter); len(clauses) > 0 {
		color.New(color.Faint).Printf("\n%d match(es) on %s\n", len(users), strings.Join(clauses, ", "))
	}
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	u, err := svc.Profile(commandContext(cmd), args[0])
	if err != nil {
		return err
	}

	color.New(color.Bold).Printf("%s", u.Name)
	fmt.Printf("  [%s]\n", u.Initials())
	faint := color.New(color.Faint)
	faint.Printf("%s\n\n", u.Location)

	if u.Available {
		color.Green("Available for a team")
	} else {
		color.Yellow("Not looking for a team")
	}
	fmt.Printf("\n%s\n", u.Bio)

	fmt.Println("\nSkills:")
	for _, g := range u.SkillsByCategory() {
		fmt.Printf("  %s: %s\n", g.Category.Title(), skillNames(g.Skills))
	}

	if len(u.Hackathons) > 0 {
		fmt.Println("\nInterested in:")
		for _, h := range u.Hackathons {
			fmt.Printf("  %s (%s, %s to %s)\n", h.Name, h.Location, h.StartDate, h.EndDate)
		}
	}
	return nil
}

func runSkills(cmd *cobra.Command, args []string) error {
	skills, err := svc.Skills(commandContext(cmd))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY")
	for _, s := range skills {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Name, s.Category)
	}
	return w.Flush()
}

func runHackathons(cmd *cobra.Command, args []string) error {
	hackathons, err := svc.Hackathons(commandContext(cmd))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tDATES")
	for _, h := range hackathons {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s to %s\n", h.ID, h.Name, h.Location, h.StartDate, h.EndDate)
	}
	return w.Flush()
}

func skillNames(skills []models.Skill) string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}
