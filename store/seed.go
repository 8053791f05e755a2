package store

// DefaultDocument returns the document seeded on first run:
// two placeholder members and two shared interests.
func DefaultDocument() *FamilyDocument {
	return &FamilyDocument{
		Members: []Member{
			{
				Name:      "Bố",
				Interests: []string{"thể thao", "tin tức", "đầu tư"},
				DOB:       "",
				Notes:     "",
			},
			{
				Name:      "Mẹ",
				Interests: []string{"nấu ăn", "sức khỏe", "làm vườn"},
				DOB:       "",
				Notes:     "",
			},
		},
		FamilyInfo: FamilyInfo{
			Address:         "",
			ImportantDates:  []string{},
			SharedInterests: []string{"du lịch", "ẩm thực"},
		},
	}
}
