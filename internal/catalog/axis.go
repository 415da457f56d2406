package catalog

// Axis is one of the four independent preference dimensions.
type Axis string

const (
	AxisEI Axis = "EI" // Extraversion–Introversion
	AxisSN Axis = "SN" // Sensing–Intuition
	AxisTF Axis = "TF" // Thinking–Feeling
	AxisJP Axis = "JP" // Judging–Perceiving
)

// AllAxes returns the four axes in fixed scoring order.
func AllAxes() [4]Axis {
	return [4]Axis{AxisEI, AxisSN, AxisTF, AxisJP}
}

// axisInfo holds the display metadata for an axis.
type axisInfo struct {
	name       string
	left       string
	leftLabel  string
	right      string
	rightLabel string
}

var axisTable = map[Axis]axisInfo{
	AxisEI: {"Extraversion–Introversion", "I", "Introversion", "E", "Extraversion"},
	AxisSN: {"Sensing–Intuition", "S", "Sensing", "N", "Intuition"},
	AxisTF: {"Thinking–Feeling", "F", "Feeling", "T", "Thinking"},
	AxisJP: {"Judging–Perceiving", "P", "Perceiving", "J", "Judging"},
}

// Valid reports whether a is one of the four known axes.
func (a Axis) Valid() bool {
	_, ok := axisTable[a]
	return ok
}

// Name returns the long display name, e.g. "Thinking–Feeling".
func (a Axis) Name() string { return axisTable[a].name }

// Left returns the letter assigned when the left pole dominates (I, S, F, P).
func (a Axis) Left() string { return axisTable[a].left }

// LeftLabel returns the display label of the left pole.
func (a Axis) LeftLabel() string { return axisTable[a].leftLabel }

// Right returns the letter assigned when the right pole dominates (E, N, T, J).
func (a Axis) Right() string { return axisTable[a].right }

// RightLabel returns the display label of the right pole.
func (a Axis) RightLabel() string { return axisTable[a].rightLabel }
