package render

import (
	"bytes"
	"testing"

	approvals "github.com/approvals/go-approval-tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tedmax100/lifo/stack"
)

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, stack.Of("top", "middle", "bottom"), Text))

	approvals.VerifyString(t, buf.String())
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, stack.Of("a", "b|c", "d"), Markdown))

	approvals.VerifyString(t, buf.String())
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, stack.Of(7, 8), HTML))

	out := buf.String()
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>7</td>")
	assert.Contains(t, out, "<td>8</td>")
}

func TestRender(t *testing.T) {
	t.Run("does not modify the stack", func(t *testing.T) {
		s := stack.Of(1, 2, 3)
		for _, f := range Formats {
			require.NoError(t, Render(&bytes.Buffer{}, s, f))
		}
		assert.Equal(t, 3, s.Len())
	})

	t.Run("empty stack", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, stack.MustNew[int](), Text))
		assert.Empty(t, buf.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		err := Render(&bytes.Buffer{}, stack.Of(1), Format("csv"))
		assert.Error(t, err)
	})
}
