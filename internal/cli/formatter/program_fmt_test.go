package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/pulse/internal/contract"
)

func TestRenderProgram(t *testing.T) {
	p := &contract.Program{
		Urgent: []contract.ProgramItem{
			{Type: contract.ItemOverdueTask, Title: "Send contract", Detail: "overdue by 3 days"},
		},
		Important: []contract.ProgramItem{
			{Type: contract.ItemMention, Title: "marc mentioned you"},
		},
		Stats: contract.ProgramStats{
			OverdueCount: 1,
			MentionCount: 1,
		},
	}

	got := RenderProgram(p)

	assert.Contains(t, got, "URGENT (1)")
	assert.Contains(t, got, "IMPORTANT (1)")
	assert.Contains(t, got, "TO PLAN (0)")
	assert.Contains(t, got, "Send contract")
	assert.Contains(t, got, "overdue by 3 days")
	assert.Contains(t, got, "marc mentioned you")
	assert.Contains(t, got, "1 overdue")
	assert.Contains(t, got, "1 mentions")
}

func TestRenderProgram_EmptyBuckets(t *testing.T) {
	got := RenderProgram(&contract.Program{})

	assert.Contains(t, got, "URGENT (0)")
	assert.Contains(t, got, "nothing here")
	assert.Contains(t, got, "0 overdue")
}
