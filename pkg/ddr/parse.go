package ddr

import (
	"regexp"
	"strings"
)

// The entities export flattens structured values into delimited strings.
// Two encodings matter here: role/people lists on the creators column and
// labelled term lists on the facility column. Parsing accepts the variants
// observed in real exports; anything unparseable degrades to empty output
// rather than failing the row.

// RolePerson is one entry of a creators-style column.
type RolePerson struct {
	Name string
	Role string
	ID   string
}

// DefaultRole is assumed when an entry names a person without a role.
const DefaultRole = "author"

// bracketIDRE matches the "Term [123]" encoding used for vocabulary-backed
// values, capturing the term and the numeric id.
var bracketIDRE = regexp.MustCompile(`(?s)^(.*\S)\s*\[(\d+)\]$`)

// NormalizeString converts CR/LF variants to plain newlines and trims
// surrounding whitespace.
func NormalizeString(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text)
}

// ParseRolePeople parses a creators-style column into its entries.
// Accepted entry forms, separated by semicolons:
//
//	Watanabe, Joe
//	Sadako Kashiwagi:narrator
//	namepart:Sadako Kashiwagi|role:narrator|id:856
//	Masuda, Kikuye [42]:narrator
//
// Entries without a name are dropped. A missing role defaults to "author".
func ParseRolePeople(text string) []RolePerson {
	text = NormalizeString(text)
	if text == "" {
		return nil
	}

	var people []RolePerson
	for _, raw := range strings.Split(text, ";") {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}

		p := RolePerson{Role: DefaultRole}
		switch {
		case strings.Contains(entry, "|") && strings.Contains(entry, ":"):
			for _, chunk := range strings.Split(entry, "|") {
				key, val, ok := strings.Cut(chunk, ":")
				if !ok {
					continue
				}
				val = strings.TrimSpace(val)
				switch strings.TrimSpace(key) {
				case "namepart", "name":
					p.Name = val
				case "role":
					p.Role = val
				case "id":
					p.ID = val
				}
			}
		case strings.Contains(entry, ":"):
			name, role, _ := strings.Cut(entry, ":")
			p.Name = strings.TrimSpace(name)
			p.Role = strings.TrimSpace(role)
		default:
			p.Name = entry
		}

		if m := bracketIDRE.FindStringSubmatch(p.Name); m != nil {
			p.Name = strings.TrimSpace(m[1])
			p.ID = m[2]
		}
		if p.Name == "" {
			continue
		}
		if p.Role == "" {
			p.Role = DefaultRole
		}
		people = append(people, p)
	}
	return people
}

// FormatRolePeople renders entries as "Role: Name" pairs joined by commas,
// the display form used in IA creator and credits fields.
func FormatRolePeople(people []RolePerson) string {
	if len(people) == 0 {
		return ""
	}
	parts := make([]string, 0, len(people))
	for _, p := range people {
		parts = append(parts, capitalize(p.Role)+": "+p.Name)
	}
	return strings.Join(parts, ", ")
}

// FirstFacilityTerm extracts the first facility term from a facility column.
// Handles the labelled list form ("term:Manzanar|id:7; ...") and the
// bracket-id form ("Manzanar [7]"). Returns "" when the column is empty or
// unrecognized.
func FirstFacilityTerm(text string) string {
	text = NormalizeString(text)
	if text == "" {
		return ""
	}
	first := strings.TrimSpace(strings.SplitN(text, ";", 2)[0])
	if first == "" {
		return ""
	}

	if strings.Contains(first, "|") || strings.Contains(first, ":") {
		for _, chunk := range strings.Split(first, "|") {
			key, val, ok := strings.Cut(chunk, ":")
			if ok && strings.TrimSpace(key) == "term" {
				return strings.TrimSpace(val)
			}
		}
		return ""
	}
	if m := bracketIDRE.FindStringSubmatch(first); m != nil {
		return strings.TrimSpace(m[1])
	}
	return first
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
