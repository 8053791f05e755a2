package store

import "strings"

// Member is one household participant with a profile.
// Name is the identity key within the document.
type Member struct {
	Name      string   `json:"name"`
	Interests []string `json:"interests"`
	DOB       string   `json:"dob"`
	Notes     string   `json:"notes"`
}

// FamilyInfo holds shared household information.
type FamilyInfo struct {
	Address         string   `json:"address"`
	ImportantDates  []string `json:"important_dates"`
	SharedInterests []string `json:"shared_interests"`
}

// FamilyDocument is the persisted root record.
// Member order is preserved across save and load.
type FamilyDocument struct {
	Members    []Member   `json:"members"`
	FamilyInfo FamilyInfo `json:"family_info"`
}

// FindMember returns the member with the given name, or nil.
func (d *FamilyDocument) FindMember(name string) *Member {
	for i := range d.Members {
		if d.Members[i].Name == name {
			return &d.Members[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the document. Empty slices stay empty rather
// than becoming nil so a re-encoded copy keeps the same JSON shape.
func (d *FamilyDocument) Clone() *FamilyDocument {
	clone := &FamilyDocument{
		FamilyInfo: FamilyInfo{
			Address:         d.FamilyInfo.Address,
			ImportantDates:  cloneStrings(d.FamilyInfo.ImportantDates),
			SharedInterests: cloneStrings(d.FamilyInfo.SharedInterests),
		},
		Members: make([]Member, len(d.Members)),
	}
	for i, m := range d.Members {
		clone.Members[i] = m
		clone.Members[i].Interests = cloneStrings(m.Interests)
	}
	return clone
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// SplitInterests parses a newline-delimited interests input.
// Lines are trimmed and empty lines dropped.
func SplitInterests(input string) []string {
	interests := []string{}
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		interests = append(interests, line)
	}
	return interests
}
