// ABOUTME: Skill category enumeration
// ABOUTME: Closed set of categories with validation and display names

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SkillCategory is the closed set of skill categories.
type SkillCategory string

const (
	CategoryFrontend   SkillCategory = "frontend"
	CategoryBackend    SkillCategory = "backend"
	CategoryDesign     SkillCategory = "design"
	CategoryMobile     SkillCategory = "mobile"
	CategoryAI         SkillCategory = "ai"
	CategoryBlockchain SkillCategory = "blockchain"
	CategoryDevOps     SkillCategory = "devops"
	CategoryOther      SkillCategory = "other"
)

// Categories lists every category in display order.
var Categories = []SkillCategory{
	CategoryFrontend,
	CategoryBackend,
	CategoryDesign,
	CategoryMobile,
	CategoryAI,
	CategoryBlockchain,
	CategoryDevOps,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c SkillCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Title returns the category with its first letter upper-cased ("Frontend").
func (c SkillCategory) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// ParseCategory validates a category name.
func ParseCategory(s string) (SkillCategory, error) {
	c := SkillCategory(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown skill category: %q", s)
	}
	return c, nil
}

func (c *SkillCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
