package schematic

const gearGlyph = '*'

// Gear is a '*' symbol touching exactly two numbers.
type Gear struct {
	Symbol   SymbolToken
	Operands [2]int
}

func (g Gear) Ratio() int {
	return g.Operands[0] * g.Operands[1]
}

func PartNumbers(g *Grid, t Tokens) []NumericToken {
	symbols := NewPositionSet(t.Symbols)
	result := make([]NumericToken, 0, len(t.Numbers))
	for _, num := range t.Numbers {
		if IsAdjacent(g, num, symbols) {
			result = append(result, num)
		}
	}
	return result
}

func PartNumberSum(g *Grid, t Tokens) int {
	sum := 0
	for _, num := range PartNumbers(g, t) {
		sum += num.Value
	}
	return sum
}

func Gears(g *Grid, t Tokens) []Gear {
	result := make([]Gear, 0)
	for _, sym := range t.Symbols {
		if sym.Glyph != gearGlyph {
			continue
		}
		neighbors := NeighborsOf(g, sym, t.Numbers)
		if len(neighbors) != 2 {
			continue
		}
		result = append(result, Gear{
			Symbol:   sym,
			Operands: [2]int{neighbors[0].Value, neighbors[1].Value},
		})
	}
	return result
}

func GearRatioSum(g *Grid, t Tokens) int {
	sum := 0
	for _, gear := range Gears(g, t) {
		sum += gear.Ratio()
	}
	return sum
}
