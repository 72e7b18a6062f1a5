package casefile

// Case kinds.
const (
	KindSelector = "selector"
	KindDomino   = "domino"
	KindZigzag   = "zigzag"
)

// Expected error kinds. Each maps to one error the katas can return.
const (
	ErrKindDuplicatePart     = "duplicate_part"
	ErrKindOrderViolation    = "order_violation"
	ErrKindInvalidCombinator = "invalid_combinator"
	ErrKindInvalidTile       = "invalid_tile"
	ErrKindInvalidSize       = "invalid_size"
	ErrKindSyntax            = "syntax"
)

// Suite is a named group of cases loaded from one file.
type Suite struct {
	// Name uniquely identifies the suite.
	Name string `yaml:"name" json:"name"`

	// Description explains what the suite covers.
	Description string `yaml:"description" json:"description"`

	// Cases run in file order.
	Cases []Case `yaml:"cases" json:"cases"`

	// Path is the file the suite was loaded from.
	Path string `yaml:"-" json:"-"`
}

// Case is one input with its expected outcome. Which input field is used
// depends on Kind.
type Case struct {
	Name string `yaml:"name" json:"name"`
	Kind string `yaml:"kind" json:"kind"`

	// Selector is the input for selector cases.
	Selector *SelectorNode `yaml:"selector,omitempty" json:"selector,omitempty"`

	// Tiles is the input for domino cases. Missing and empty are the same
	// input: a set with no tiles.
	Tiles [][]int `yaml:"tiles,omitempty" json:"tiles,omitempty"`

	// Size is the input for zigzag cases.
	Size *int `yaml:"size,omitempty" json:"size,omitempty"`

	Expect Expect `yaml:"expect" json:"expect"`
}

// SelectorNode describes a selector in one of three ways: Text to parse,
// Parts to feed a builder in order, or Left/Op/Right to combine.
type SelectorNode struct {
	Text  string        `yaml:"text,omitempty" json:"text,omitempty"`
	Parts []Part        `yaml:"parts,omitempty" json:"parts,omitempty"`
	Left  *SelectorNode `yaml:"left,omitempty" json:"left,omitempty"`
	Op    *string       `yaml:"op,omitempty" json:"op,omitempty"`
	Right *SelectorNode `yaml:"right,omitempty" json:"right,omitempty"`
}

// Part is one builder call: Kind names the category ("element", "id",
// "class", "attr", "pseudo-class", "pseudo-element").
type Part struct {
	Kind  string `yaml:"kind" json:"kind"`
	Value string `yaml:"value" json:"value"`
}

// Expect holds the expected outcome. Error, when set, names the kind of
// failure and excludes the other fields.
type Expect struct {
	Output *string `yaml:"output,omitempty" json:"output,omitempty"`
	Row    *bool   `yaml:"row,omitempty" json:"row,omitempty"`
	Matrix [][]int `yaml:"matrix,omitempty" json:"matrix,omitempty"`
	Error  string  `yaml:"error,omitempty" json:"error,omitempty"`
}
