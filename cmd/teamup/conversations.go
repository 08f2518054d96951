// ABOUTME: Conversation CLI commands
// ABOUTME: Implements conversation listing, transcripts, and sending messages

package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Aditya-web3/hack-team-up-now/internal/conversation"
)

var conversationsCmd = &cobra.Command{
	Use:   "conversations",
	Short: "List your conversations",
	Args:  cobra.NoArgs,
	RunE:  runConversations,
}

var messagesCmd = &cobra.Command{
	Use:   "messages <conversation>",
	Short: "Show a conversation transcript",
	Args:  cobra.ExactArgs(1),
	RunE:  runMessages,
}

var sendCmd = &cobra.Command{
	Use:   "send <conversation> <message>",
	Short: "Send a message in a conversation",
	Args:  cobra.ExactArgs(2),
	RunE:  runSend,
}

var searchQuery string

func init() {
	rootCmd.AddCommand(conversationsCmd, messagesCmd, sendCmd)

	conversationsCmd.Flags().StringVar(&searchQuery, "search", "", "filter by counterpart name")
}

func runConversations(cmd *cobra.Command, args []string) error {
	list, err := svc.Conversations(commandContext(cmd), currentUser(), searchQuery)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No conversations found.")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWITH\tLAST\tUNREAD\tPREVIEW")
	for _, c := range list {
		when := ""
		if c.Conversation.LastMessage != nil {
			when = conversation.FormatTimestamp(c.Conversation.LastMessage.Timestamp, now)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			c.Conversation.ID, c.Counterpart.Name, when, c.Conversation.UnreadCount, clip(c.Preview, 50))
	}
	return w.Flush()
}

func runMessages(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	tr, err := svc.Transcript(ctx, args[0], time.Local)
	if err != nil {
		return err
	}

	if len(tr.Messages) == 0 {
		fmt.Println("No messages yet.")
		return nil
	}

	me := currentUser()
	names := map[string]string{}
	for _, id := range tr.Conversation.Participants {
		if u, err := svc.Profile(ctx, id); err == nil {
			names[id] = u.Name
		}
	}

	faint := color.New(color.Faint)
	self := color.New(color.FgMagenta, color.Bold)
	other := color.New(color.FgCyan, color.Bold)
	for _, day := range tr.Days {
		faint.Printf("── %s ──\n\n", day.Label)
		for _, msg := range day.Messages {
			if msg.SenderID == me {
				self.Print("You")
			} else {
				other.Print(names[msg.SenderID])
			}
			faint.Printf(" · %s\n", msg.Timestamp.In(time.Local).Format("3:04 PM"))
			fmt.Printf("%s\n\n", msg.Content)
		}
	}
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	msg, err := svc.Send(commandContext(cmd), currentUser(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	color.Green("Sent to user %s", msg.ReceiverID)
	fmt.Printf("Message ID: %s\n", msg.ID[:8])
	if cfg.DBPath == "" {
		color.Yellow("Not saved: pass --db to keep messages between runs")
	}
	return nil
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
