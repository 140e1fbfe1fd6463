package models

import (
	"time"

	"github.com/google/uuid"
)

type FileKind string

const (
	FileKindPDF  FileKind = "pdf"
	FileKindDocx FileKind = "docx"
	FileKindText FileKind = "txt"
)

// FileKindFromExtension maps an upload extension (".pdf", ".docx", ".txt")
// to its file kind. The boolean reports whether the extension is supported.
func FileKindFromExtension(ext string) (FileKind, bool) {
	switch ext {
	case ".pdf":
		return FileKindPDF, true
	case ".docx":
		return FileKindDocx, true
	case ".txt":
		return FileKindText, true
	default:
		return "", false
	}
}

type Resume struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FileKind         FileKind  `gorm:"type:text" json:"file_kind"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}
