package sheet

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rashika27/frameview/pkg/errors"
	"github.com/rashika27/frameview/pkg/frame"
	"github.com/rashika27/frameview/pkg/geom"
)

// Column names of the member and node sheets.
const (
	ColStartNode = "Start Node"
	ColEndNode   = "End Node"
	ColNode      = "Node"
	ColX         = "X"
	ColY         = "Y"
	ColZ         = "Z"
)

// ToFrame maps the first sheet to members and the second to nodes.
func ToFrame(wb *Workbook) (*frame.Frame, error) {
	if wb == nil || len(wb.Sheets) < 2 {
		n := 0
		if wb != nil {
			n = len(wb.Sheets)
		}
		return nil, errors.New(errors.ErrCodeMissingSheet,
			"spreadsheet needs a members sheet and a nodes sheet, found %d sheet(s)", n)
	}

	memberSheet, nodeSheet := wb.Sheets[0], wb.Sheets[1]
	if len(memberSheet.Rows) == 0 {
		return nil, errors.New(errors.ErrCodeMissingSheet, "members sheet %q is empty", memberSheet.Name)
	}
	if len(nodeSheet.Rows) == 0 {
		return nil, errors.New(errors.ErrCodeMissingSheet, "nodes sheet %q is empty", nodeSheet.Name)
	}

	members := make([]frame.Member, 0, len(memberSheet.Rows))
	for _, r := range memberSheet.Rows {
		members = append(members, frame.Member{
			Start: r.Get(ColStartNode),
			End:   r.Get(ColEndNode),
		})
	}

	nodes := make([]frame.Node, 0, len(nodeSheet.Rows))
	for _, r := range nodeSheet.Rows {
		nodes = append(nodes, frame.Node{
			ID: r.Get(ColNode),
			Position: geom.Vec{
				X: ParseCoord(r.Get(ColX)),
				Y: ParseCoord(r.Get(ColY)),
				Z: ParseCoord(r.Get(ColZ)),
			},
		})
	}

	return frame.New(members, nodes), nil
}

// ParseCoord parses a coordinate cell. Blank, non-numeric and non-finite
// text is 0.
func ParseCoord(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Read decodes a workbook from r and maps it to a frame.
func Read(r io.Reader) (*frame.Frame, error) {
	wb, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return ToFrame(wb)
}

// Load reads the workbook at path and maps it to a frame.
func Load(path string) (*frame.Frame, error) {
	wb, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return ToFrame(wb)
}
