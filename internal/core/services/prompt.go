package services

import (
	"strings"

	"github.com/vncsmyrnk/careerguide/internal/core/domain"
)

var instructions = map[domain.MessageType]string{
	domain.MessageTypeCareerPath: "You are an experienced career counselor. Suggest three to five career paths " +
		"that suit the person described below. For each path explain why it fits, list the key skills " +
		"to develop and name typical entry level roles.",
	domain.MessageTypeJobInsight: "You are a labor market analyst. Give concise insights into the job market " +
		"that matter to the person described below: roles in demand, typical responsibilities, " +
		"expected salary ranges and the growth outlook.",
	domain.MessageTypeRoadmap: "You are a mentor who designs learning plans. Build a step by step roadmap, " +
		"split into phases with approximate durations, that takes the person described below from " +
		"where they are today to their goals. Include concrete resources and milestones.",
}

// BuildPrompt assembles the instruction for a message type. Profile fields and the
// hint are only included when they carry text.
func BuildPrompt(msgType domain.MessageType, profile *domain.Profile, hint *string) string {
	var b strings.Builder
	b.WriteString(instructions[msgType])

	var about []string
	if profile != nil {
		about = appendField(about, "Interests", profile.Interests)
		about = appendField(about, "Skills", profile.Skills)
		about = appendField(about, "Goals", profile.Goals)
	}
	if len(about) > 0 {
		b.WriteString("\n\nAbout the person:\n")
		b.WriteString(strings.Join(about, "\n"))
	}

	if text := trimmed(hint); text != "" {
		b.WriteString("\n\nAdditional context from the user: ")
		b.WriteString(text)
	}

	return b.String()
}

func appendField(lines []string, label string, value *string) []string {
	if text := trimmed(value); text != "" {
		return append(lines, "- "+label+": "+text)
	}
	return lines
}

func trimmed(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
