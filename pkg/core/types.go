package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// CellIndex addresses a single cell. X is the column counted from the left,
// Y is the row counted from the top.
type CellIndex struct {
	X int
	Y int
}

// Sim defines the minimal contract the shells drive.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() bool
	Cells() []uint8
}

// Status is a point-in-time summary of a running sim for HUDs and logs.
type Status struct {
	State      string
	Generation int
	LiveCells  int
}

// StatusProvider is implemented by sims that can report a Status.
type StatusProvider interface {
	Status() Status
}
