package display

import (
	"fmt"
	"strings"

	"github.com/AlexZinkM/evm-wallet/internal/common"
	"github.com/AlexZinkM/evm-wallet/internal/model"
)

const (
	// DefaultWidth is the total box width in terminal cells
	DefaultWidth = 85

	// TimestampLayout is used in the box header
	TimestampLayout = "2006-01-02 15:04:05"
)

// Field labels are padded to the same width so values line up
const (
	labelAddress    = "Address    "
	labelPrivateKey = "Private Key"
	labelPublicKey  = "Public Key "
	labelMnemonic   = "Mnemonic   "
)

// Kind tells the printer how a line should be styled
type Kind int

const (
	KindBorder Kind = iota
	KindHeader
	KindAddress
	KindPrivateKey
	KindPublicKey
	KindMnemonic
	KindBlank
)

// Line is one rendered row of a box
type Line struct {
	Kind Kind
	Text string
}

// Formatter renders fixed-width boxes
type Formatter struct {
	width int
}

// NewFormatter creates a formatter for boxes of the given total width
func NewFormatter(width int) *Formatter {
	return &Formatter{width: width}
}

// Width returns the total box width
func (f *Formatter) Width() int {
	return f.width
}

// Line formats one labeled field as "│ label: value" padded to the box width
// and closed with the right border. Values that do not fit are truncated
// with an ellipsis; formatting never fails.
func (f *Formatter) Line(label, value string) string {
	prefix := "│ " + label + ": "
	maxContentLength := f.width - 4
	// +2 gives back the two spaces already counted in the prefix
	availableValueWidth := maxContentLength - common.Width(prefix) + 2

	lineContent := prefix + common.TruncateCells(value, availableValueWidth)
	padding := common.Pad(f.width - common.Width(lineContent) - 1)

	return lineContent + padding + "│"
}

// Top returns the top border
func (f *Formatter) Top() string {
	return f.border("┌", "┐")
}

// Separator returns the line between the header and the fields
func (f *Formatter) Separator() string {
	return f.border("├", "┤")
}

// Bottom returns the bottom border
func (f *Formatter) Bottom() string {
	return f.border("└", "┘")
}

func (f *Formatter) border(left, right string) string {
	n := f.width - 2
	if n < 0 {
		n = 0
	}
	return left + strings.Repeat("─", n) + right
}

// Box renders a full box for one entry, followed by a blank line.
// The public key row is only included when withPublicKey is set.
func (f *Formatter) Box(entry *model.Entry, withPublicKey bool) []Line {
	header := f.Line(
		fmt.Sprintf("Wallet #%d", entry.Sequence),
		fmt.Sprintf("(%s)", entry.Timestamp.Format(TimestampLayout)),
	)

	lines := []Line{
		{Kind: KindBorder, Text: f.Top()},
		{Kind: KindHeader, Text: header},
		{Kind: KindBorder, Text: f.Separator()},
		{Kind: KindAddress, Text: f.Line(labelAddress, entry.Address)},
		{Kind: KindPrivateKey, Text: f.Line(labelPrivateKey, entry.PrivateKey)},
	}
	if withPublicKey {
		lines = append(lines, Line{Kind: KindPublicKey, Text: f.Line(labelPublicKey, entry.PublicKey)})
	}
	lines = append(lines,
		Line{Kind: KindMnemonic, Text: f.Line(labelMnemonic, entry.Mnemonic)},
		Line{Kind: KindBorder, Text: f.Bottom()},
		Line{Kind: KindBlank, Text: ""},
	)
	return lines
}
