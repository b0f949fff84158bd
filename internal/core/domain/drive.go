package domain

type File struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Modified string `json:"modified"`
	Owner    string `json:"owner"`
	Shared   bool   `json:"shared"`
}

type Folder struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	FileCount int    `json:"file_count"`
}

type StorageInfo struct {
	TotalFiles     int     `json:"total_files"`
	TotalSizeBytes int64   `json:"total_size_bytes"`
	TotalSizeMB    float64 `json:"total_size_mb"`
	Folders        int     `json:"folders"`
	SharedFiles    int     `json:"shared_files"`
}

func SeedFiles() []File {
	return []File{
		{
			ID:       1,
			Name:     "Project Proposal.docx",
			Size:     2048576,
			Type:     "document",
			Modified: "2024-08-20T10:30:00Z",
			Owner:    "john.doe@company.com",
			Shared:   true,
		},
		{
			ID:       2,
			Name:     "Budget Report.xlsx",
			Size:     1024000,
			Type:     "spreadsheet",
			Modified: "2024-08-21T14:15:00Z",
			Owner:    "alice.brown@company.com",
			Shared:   false,
		},
		{
			ID:       3,
			Name:     "Presentation.pptx",
			Size:     5242880,
			Type:     "presentation",
			Modified: "2024-08-21T16:45:00Z",
			Owner:    "jane.smith@company.com",
			Shared:   true,
		},
	}
}

func SeedFolders() []Folder {
	return []Folder{
		{ID: 1, Name: "Projects", FileCount: 15},
		{ID: 2, Name: "Reports", FileCount: 8},
		{ID: 3, Name: "Templates", FileCount: 12},
	}
}
