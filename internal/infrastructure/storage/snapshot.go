package storage

import (
	"encoding/json"
	"fmt"

	"chase-cover/internal/domain/entity"
)

// EncodeSnapshot сериализует снимок в JSON для скачивания.
func EncodeSnapshot(s *entity.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}
