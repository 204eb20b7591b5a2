package impact

// Composition returns the material breakdown for an asteroid type. The
// returned slice is a fresh copy; unrecognized types yield an empty slice.
func Composition(t AsteroidType) []CompositionElement {
	var table []CompositionElement
	switch t {
	case TypeStony:
		table = []CompositionElement{
			{Element: "Silicates", Percentage: 70, Fill: "#a1887f"},
			{Element: "Iron-Nickel", Percentage: 15, Fill: "#90a4ae"},
			{Element: "Sulfides", Percentage: 10, Fill: "#fdd835"},
			{Element: "Other", Percentage: 5, Fill: "#bdbdbd"},
		}
	case TypeMetallic:
		table = []CompositionElement{
			{Element: "Iron", Percentage: 85, Fill: "#78909c"},
			{Element: "Nickel", Percentage: 14, Fill: "#b0bec5"},
			{Element: "Cobalt", Percentage: 1, Fill: "#3f51b5"},
		}
	case TypeIcy:
		table = []CompositionElement{
			{Element: "Water Ice", Percentage: 60, Fill: "#81d4fa"},
			{Element: "Silicates", Percentage: 20, Fill: "#a1887f"},
			{Element: "Carbon Compounds", Percentage: 15, Fill: "#424242"},
			{Element: "Volatiles", Percentage: 5, Fill: "#ce93d8"},
		}
	case TypeCarbonaceous:
		table = []CompositionElement{
			{Element: "Silicates", Percentage: 45, Fill: "#a1887f"},
			{Element: "Carbon Compounds", Percentage: 20, Fill: "#424242"},
			{Element: "Hydrated Minerals", Percentage: 25, Fill: "#4db6ac"},
			{Element: "Other", Percentage: 10, Fill: "#bdbdbd"},
		}
	default:
		table = []CompositionElement{}
	}
	return table
}
