package challenge

// Kind identifies one of the eight generated challenge variants.
type Kind string

const (
	KindColor       = Kind("color")
	KindMath        = Kind("math")
	KindReaction    = Kind("reaction")
	KindDifferent   = Kind("different")
	KindDirection   = Kind("direction")
	KindCount       = Kind("count")
	KindGreaterLess = Kind("greaterless")
	KindOrder       = Kind("order")
)

// Kinds lists every challenge variant, in wire order.
var Kinds = []Kind{
	KindColor,
	KindMath,
	KindReaction,
	KindDifferent,
	KindDirection,
	KindCount,
	KindGreaterLess,
	KindOrder,
}

// Per-kind countdown limits in seconds.
const (
	colorLimit       = 15
	mathLimit        = 12
	reactionLimit    = 10
	differentLimit   = 10
	directionLimit   = 8
	countLimit       = 12
	greaterLessLimit = 10
	orderLimit       = 12
)

// Challenge is a self-contained, immutable challenge descriptor. The concrete
// type carries only the payload fields of its own kind; the JSON encoding of
// each concrete type is the wire format sent inside challenge-start.
type Challenge interface {
	// Kind reports the challenge variant.
	Kind() Kind
	// Limit is the countdown length in seconds, also used to normalize scoring.
	Limit() int
	// Answer is the index of the correct option.
	Answer() int
}

// Color asks for the name of a displayed color swatch.
type Color struct {
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	TargetColor     string   `json:"targetColor"`
	TargetColorName string   `json:"targetColorName"`
	Options         []string `json:"options"`
	CorrectAnswer   int      `json:"correctAnswer"`
	TimeLimit       int      `json:"timeLimit"`
}

func (c *Color) Kind() Kind  { return KindColor }
func (c *Color) Limit() int  { return c.TimeLimit }
func (c *Color) Answer() int { return c.CorrectAnswer }

// Math asks for the result of a two-operand arithmetic expression.
type Math struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Question      string `json:"question"`
	Options       []int  `json:"options"`
	CorrectAnswer int    `json:"correctAnswer"`
	TimeLimit     int    `json:"timeLimit"`
}

func (c *Math) Kind() Kind  { return KindMath }
func (c *Math) Limit() int  { return c.TimeLimit }
func (c *Math) Answer() int { return c.CorrectAnswer }

// Reaction asks the participant to act as soon as the target shape appears.
// The shape becomes actionable only after Delay milliseconds.
type Reaction struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	TargetShape   string `json:"targetShape"`
	Delay         int    `json:"delay"`
	CorrectAnswer int    `json:"correctAnswer"`
	TimeLimit     int    `json:"timeLimit"`
}

func (c *Reaction) Kind() Kind  { return KindReaction }
func (c *Reaction) Limit() int  { return c.TimeLimit }
func (c *Reaction) Answer() int { return c.CorrectAnswer }

// Different asks for the single odd cell in a 3x3 grid.
type Different struct {
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Grid          []string `json:"grid"`
	CorrectAnswer int      `json:"correctAnswer"`
	TimeLimit     int      `json:"timeLimit"`
}

func (c *Different) Kind() Kind  { return KindDifferent }
func (c *Different) Limit() int  { return c.TimeLimit }
func (c *Different) Answer() int { return c.CorrectAnswer }

// Direction asks for the name of a displayed arrow.
type Direction struct {
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	TargetDirection string   `json:"targetDirection"`
	Options         []string `json:"options"`
	CorrectAnswer   int      `json:"correctAnswer"`
	TimeLimit       int      `json:"timeLimit"`
}

func (c *Direction) Kind() Kind  { return KindDirection }
func (c *Direction) Limit() int  { return c.TimeLimit }
func (c *Direction) Answer() int { return c.CorrectAnswer }

// Count asks how many repeated shapes are displayed.
type Count struct {
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Grid          []string `json:"grid"`
	Shape         string   `json:"shape"`
	Options       []int    `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	TimeLimit     int      `json:"timeLimit"`
}

func (c *Count) Kind() Kind  { return KindCount }
func (c *Count) Limit() int  { return c.TimeLimit }
func (c *Count) Answer() int { return c.CorrectAnswer }

// GreaterLess asks whether a displayed comparison holds.
type GreaterLess struct {
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Question      string   `json:"question"`
	Num1          int      `json:"num1"`
	Num2          int      `json:"num2"`
	Operation     string   `json:"operation"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	TimeLimit     int      `json:"timeLimit"`
}

func (c *GreaterLess) Kind() Kind  { return KindGreaterLess }
func (c *GreaterLess) Limit() int  { return c.TimeLimit }
func (c *GreaterLess) Answer() int { return c.CorrectAnswer }

// Order asks for the largest or smallest of four shuffled consecutive numbers.
type Order struct {
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Numbers       []int    `json:"numbers"`
	OrderType     string   `json:"orderType"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	TimeLimit     int      `json:"timeLimit"`
}

func (c *Order) Kind() Kind  { return KindOrder }
func (c *Order) Limit() int  { return c.TimeLimit }
func (c *Order) Answer() int { return c.CorrectAnswer }
