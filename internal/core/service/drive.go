package service

import (
	"math"

	"contoso.com/officemock/internal/core/domain"
	"contoso.com/officemock/internal/store"
)

type DriveService struct {
	files   *store.Collection[domain.File]
	folders *store.Collection[domain.Folder]
}

func NewDriveService(files *store.Collection[domain.File], folders *store.Collection[domain.Folder]) *DriveService {
	return &DriveService{files: files, folders: folders}
}

func (s *DriveService) ListFiles() []domain.File {
	return s.files.List()
}

func (s *DriveService) GetFile(id int) (domain.File, error) {
	file, ok := s.files.Get(id)
	if !ok {
		return domain.File{}, domain.ErrFileNotFound
	}
	return file, nil
}

func (s *DriveService) ListFolders() []domain.Folder {
	return s.folders.List()
}

func (s *DriveService) SharedFiles() []domain.File {
	return s.files.Filter(func(f domain.File) bool { return f.Shared })
}

func (s *DriveService) StorageInfo() domain.StorageInfo {
	files := s.files.List()

	var totalSize int64
	shared := 0
	for _, f := range files {
		totalSize += f.Size
		if f.Shared {
			shared++
		}
	}

	return domain.StorageInfo{
		TotalFiles:     len(files),
		TotalSizeBytes: totalSize,
		TotalSizeMB:    math.Round(float64(totalSize)/1024/1024*100) / 100,
		Folders:        s.folders.Len(),
		SharedFiles:    shared,
	}
}
