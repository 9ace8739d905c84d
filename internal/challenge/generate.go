package challenge

import (
	"fmt"
	"math/rand"
)

var (
	colorValues = []string{"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#FF00FF", "#00FFFF"}
	colorNames  = []string{"Red", "Green", "Blue", "Yellow", "Magenta", "Cyan"}

	reactionShapes  = []string{"🔴", "🔵", "🟢", "🟡", "🟣", "⚫", "⚪"}
	differentShapes = []string{"🔴", "🔵", "🟢", "🟡"}
	countShapes     = []string{"🔴", "🔵", "🟢", "🟡", "⭐", "💎"}
	directions      = []string{"⬆️", "⬇️", "⬅️", "➡️"}
)

// Random generates a challenge of a uniformly random kind.
func Random() Challenge {
	return New(Kinds[rand.Intn(len(Kinds))])
}

// New generates a fresh, solvable challenge of the given kind.
func New(k Kind) Challenge {
	switch k {
	case KindColor:
		return newColor()
	case KindMath:
		return newMath()
	case KindReaction:
		return newReaction()
	case KindDifferent:
		return newDifferent()
	case KindDirection:
		return newDirection()
	case KindCount:
		return newCount()
	case KindGreaterLess:
		return newGreaterLess()
	case KindOrder:
		return newOrder()
	default:
		return newColor()
	}
}

func newColor() *Color {
	target := rand.Intn(len(colorValues))
	options := shuffled(colorValues)

	return &Color{
		Type:            string(KindColor),
		Title:           "🎨 What color is this?",
		TargetColor:     colorValues[target],
		TargetColorName: colorNames[target],
		Options:         options,
		CorrectAnswer:   indexOf(options, colorValues[target]),
		TimeLimit:       colorLimit,
	}
}

func newMath() *Math {
	num1 := rand.Intn(50) + 1
	num2 := rand.Intn(50) + 1

	var op string
	var result int
	switch rand.Intn(3) {
	case 0:
		op, result = "+", num1+num2
	case 1:
		op, result = "-", num1-num2
	default:
		op, result = "×", num1*num2
	}

	options, correct := numericOptions(result, offsetDistractor)

	return &Math{
		Type:          string(KindMath),
		Title:         "🔢 Solve it fast!",
		Question:      fmt.Sprintf("%d %s %d = ?", num1, op, num2),
		Options:       options,
		CorrectAnswer: correct,
		TimeLimit:     mathLimit,
	}
}

func newReaction() *Reaction {
	return &Reaction{
		Type:          string(KindReaction),
		Title:         "⚡ Click when it appears!",
		TargetShape:   reactionShapes[rand.Intn(len(reactionShapes))],
		Delay:         rand.Intn(3000) + 2000,
		CorrectAnswer: 0,
		TimeLimit:     reactionLimit,
	}
}

func newDifferent() *Different {
	same := differentShapes[rand.Intn(len(differentShapes))]
	other := same
	for other == same {
		other = differentShapes[rand.Intn(len(differentShapes))]
	}

	grid := make([]string, 9)
	for i := range grid {
		grid[i] = same
	}
	oddCell := rand.Intn(9)
	grid[oddCell] = other

	return &Different{
		Type:          string(KindDifferent),
		Title:         "👁️ Spot the different one!",
		Grid:          grid,
		CorrectAnswer: oddCell,
		TimeLimit:     differentLimit,
	}
}

func newDirection() *Direction {
	target := directions[rand.Intn(len(directions))]
	options := shuffled(directions)

	return &Direction{
		Type:            string(KindDirection),
		Title:           "🧭 Which direction is this?",
		TargetDirection: target,
		Options:         options,
		CorrectAnswer:   indexOf(options, target),
		TimeLimit:       directionLimit,
	}
}

func newCount() *Count {
	count := rand.Intn(9) + 1
	shape := countShapes[rand.Intn(len(countShapes))]

	grid := make([]string, count)
	for i := range grid {
		grid[i] = shape
	}

	options, correct := numericOptions(count, wrongCount)

	return &Count{
		Type:          string(KindCount),
		Title:         "🔢 Count them quickly!",
		Grid:          grid,
		Shape:         shape,
		Options:       options,
		CorrectAnswer: correct,
		TimeLimit:     countLimit,
	}
}

func newGreaterLess() *GreaterLess {
	num1 := rand.Intn(100) + 1
	num2 := rand.Intn(100) + 1

	op := ">"
	holds := num1 > num2
	if rand.Intn(2) == 1 {
		op = "<"
		holds = num1 < num2
	}

	correct := 1
	if holds {
		correct = 0
	}

	return &GreaterLess{
		Type:          string(KindGreaterLess),
		Title:         "⚖️ Greater or less?",
		Question:      fmt.Sprintf("%d %s %d?", num1, op, num2),
		Num1:          num1,
		Num2:          num2,
		Operation:     op,
		Options:       []string{"True", "False"},
		CorrectAnswer: correct,
		TimeLimit:     greaterLessLimit,
	}
}

func newOrder() *Order {
	start := rand.Intn(50) + 1
	numbers := []int{start, start + 1, start + 2, start + 3}
	display := shuffled(numbers)

	orderType := "largest"
	target := start + 3
	if rand.Intn(2) == 1 {
		orderType = "smallest"
		target = start
	}

	options := make([]string, len(display))
	for i, n := range display {
		options[i] = fmt.Sprintf("%d", n)
	}

	return &Order{
		Type:          string(KindOrder),
		Title:         fmt.Sprintf("📊 Which number is the %s?", orderType),
		Numbers:       display,
		OrderType:     orderType,
		Options:       options,
		CorrectAnswer: indexOf(display, target),
		TimeLimit:     orderLimit,
	}
}

// shuffled returns a shuffled copy of the given slice.
func shuffled[T comparable](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func indexOf[T comparable](s []T, v T) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// offsetDistractor offsets the true result by a random nonzero delta in
// [5,24] with random sign.
func offsetDistractor(result int) int {
	delta := rand.Intn(20) + 5
	if rand.Intn(2) == 0 {
		delta = -delta
	}
	return result + delta
}

// wrongCount picks a count in [1,10] distinct from the true one.
func wrongCount(count int) int {
	wrong := count
	for wrong == count {
		wrong = rand.Intn(10) + 1
	}
	return wrong
}

// numericOptions builds 4 pairwise-distinct options containing the correct
// value at a random position, using distract to produce wrong values.
// Returns the options and the index of the correct one.
func numericOptions(correct int, distract func(int) int) ([]int, int) {
	correctIndex := rand.Intn(4)
	options := make([]int, 4)
	used := map[int]bool{correct: true}

	for i := range options {
		if i == correctIndex {
			options[i] = correct
			continue
		}
		wrong := distract(correct)
		for used[wrong] {
			wrong = distract(correct)
		}
		used[wrong] = true
		options[i] = wrong
	}
	return options, correctIndex
}
