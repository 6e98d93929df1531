package domain

// Department is a canonical production department a work item moves through.
type Department string

const (
	DeptLamination Department = "lamination"
	DeptAssembly   Department = "assembly"
	DeptFinishing  Department = "finishing"
	DeptRigging    Department = "rigging"
	DeptQC         Department = "qc"
)

// FlowOrder is the canonical progression of departments.
var FlowOrder = []Department{
	DeptLamination,
	DeptAssembly,
	DeptFinishing,
	DeptRigging,
	DeptQC,
}

// ValidDepartments is the closed set of departments that may appear in output.
var ValidDepartments = map[Department]bool{
	DeptLamination: true, DeptAssembly: true, DeptFinishing: true,
	DeptRigging: true, DeptQC: true,
}

// Rank returns the position of d in FlowOrder, or len(FlowOrder) for an
// unknown department so it sorts last.
func (d Department) Rank() int {
	for i, fd := range FlowOrder {
		if fd == d {
			return i
		}
	}
	return len(FlowOrder)
}

// ProductLine is the tag of a product-line block, e.g. "40" or "26".
type ProductLine string

// LineUnknown buckets runs whose work-item id carries no recognizable tag.
const LineUnknown ProductLine = "unknown"

// WeekLayout is the canonical week format: the Monday of a work-week.
const WeekLayout = "2006-01-02"
