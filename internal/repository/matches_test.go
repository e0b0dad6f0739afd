package repository

import (
	stderrors "errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"CoBag/pkg/errors"
)

// 同一 (trip, shipment) 的并发重复提案由部分唯一索引兜底，
// 约束冲突必须翻译成 DuplicateProposal，其余错误原样透传
func TestTranslateProposalError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"duplicated key", gorm.ErrDuplicatedKey, errors.DuplicateProposal},
		{"wrapped duplicated key", fmt.Errorf("create match: %w", gorm.ErrDuplicatedKey), errors.DuplicateProposal},
		{"other error", gorm.ErrInvalidDB, gorm.ErrInvalidDB},
		{"no error", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateProposalError(tt.in); !stderrors.Is(got, tt.want) {
				t.Errorf("translateProposalError(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
