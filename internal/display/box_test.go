package display

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/evm-wallet/internal/common"
	"github.com/AlexZinkM/evm-wallet/internal/model"
)

const (
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testMnemonic   = "test test test test test test test test test test test junk"
)

func testEntry() *model.Entry {
	return &model.Entry{
		Wallet: model.Wallet{
			Address:    testAddress,
			PrivateKey: testPrivateKey,
			PublicKey:  "0x04" + strings.Repeat("ab", 64),
			Mnemonic:   testMnemonic,
		},
		Sequence:  7,
		Timestamp: time.Date(2024, 3, 9, 14, 5, 1, 0, time.UTC),
	}
}

func TestLineWidthWhenValueFits(t *testing.T) {
	for _, width := range []int{20, 40, 85, 120} {
		f := NewFormatter(width)
		for _, label := range []string{"A", "Address    ", "Private Key", "Wallet #12"} {
			prefix := "│ " + label + ": "
			available := width - 4 - common.Width(prefix) + 2
			if available < 0 {
				continue
			}
			value := strings.Repeat("x", available)
			line := f.Line(label, value)

			assert.Equal(t, width, common.Width(line), "width=%d label=%q", width, label)
			assert.True(t, strings.HasPrefix(line, prefix+value))
			assert.True(t, strings.HasSuffix(line, "│"))
		}
	}
}

func TestLineTruncatesLongValue(t *testing.T) {
	f := NewFormatter(DefaultWidth)
	value := strings.Repeat("word ", 40)

	line := f.Line(labelMnemonic, value)

	assert.Equal(t, DefaultWidth, common.Width(line))
	content := strings.TrimRight(strings.TrimSuffix(line, "│"), " ")
	assert.True(t, strings.HasSuffix(content, "..."), "got %q", line)
	// 85 - 4 - len("│ Mnemonic   : ") + 2 = 68 cells for the value
	assert.Equal(t, "│ Mnemonic   : "+value[:65]+"...", content)
}

func TestLineExactFitIsNotTruncated(t *testing.T) {
	f := NewFormatter(DefaultWidth)
	value := strings.Repeat("z", 68)

	line := f.Line(labelAddress, value)

	assert.NotContains(t, line, "...")
	assert.Equal(t, "│ Address    : "+value+" │", line)
}

func TestLineIsIdempotent(t *testing.T) {
	f := NewFormatter(DefaultWidth)
	first := f.Line(labelPrivateKey, testPrivateKey)
	second := f.Line(labelPrivateKey, testPrivateKey)
	assert.Equal(t, first, second)
}

func TestLineClampsWhenLabelLeavesNoRoom(t *testing.T) {
	f := NewFormatter(20)

	// prefix "│ Private Key: " is 15 cells, exactly 3 left for the value
	line := f.Line("Private Key", testPrivateKey)
	assert.Equal(t, "│ Private Key: ... │", line)
	assert.Equal(t, 20, common.Width(line))

	// 2 cells left: the value is dropped and no ellipsis is added
	line = f.Line("Private Key!", testPrivateKey)
	assert.Equal(t, "│ Private Key!:    │", line)
	assert.Equal(t, 20, common.Width(line))

	// nothing left
	line = f.Line("Private Key!!!", testPrivateKey)
	assert.Equal(t, 20, common.Width(line))
	assert.NotContains(t, line, "0x")
}

func TestLineWideCharacters(t *testing.T) {
	f := NewFormatter(40)
	value := strings.Repeat("あ", 30)

	line := f.Line("Mnemonic", value)

	assert.Equal(t, 40, common.Width(line))
	assert.Contains(t, line, "...")
}

func TestBorders(t *testing.T) {
	f := NewFormatter(10)
	assert.Equal(t, "┌────────┐", f.Top())
	assert.Equal(t, "├────────┤", f.Separator())
	assert.Equal(t, "└────────┘", f.Bottom())
	assert.Equal(t, 10, common.Width(f.Top()))
}

func TestBox(t *testing.T) {
	f := NewFormatter(DefaultWidth)

	lines := f.Box(testEntry(), false)
	require.Len(t, lines, 8)

	kinds := make([]Kind, 0, len(lines))
	for _, l := range lines {
		kinds = append(kinds, l.Kind)
	}
	assert.Equal(t, []Kind{
		KindBorder, KindHeader, KindBorder, KindAddress, KindPrivateKey, KindMnemonic, KindBorder, KindBlank,
	}, kinds)

	assert.True(t, strings.HasPrefix(lines[1].Text, "│ Wallet #7: (2024-03-09 14:05:01)"))
	assert.Contains(t, lines[3].Text, testAddress)
	assert.Contains(t, lines[4].Text, testPrivateKey)
	assert.Contains(t, lines[5].Text, testMnemonic)
	assert.Empty(t, lines[7].Text)

	for _, l := range lines[:7] {
		assert.Equal(t, DefaultWidth, common.Width(l.Text), "line %q", l.Text)
	}
}

func TestBoxWithPublicKey(t *testing.T) {
	f := NewFormatter(DefaultWidth)

	lines := f.Box(testEntry(), true)
	require.Len(t, lines, 9)
	assert.Equal(t, KindPublicKey, lines[5].Kind)
	assert.True(t, strings.HasPrefix(lines[5].Text, "│ Public Key : 0x04abab"))
	assert.Contains(t, lines[5].Text, "...")
	assert.Equal(t, DefaultWidth, common.Width(lines[5].Text))
}
