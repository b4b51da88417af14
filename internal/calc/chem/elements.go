package chem

// Element is a periodic table entry with its standard atomic weight in g/mol.
type Element struct {
	Symbol string
	Name   string
	Number int
	Weight float64
}

var elements = []Element{
	{"H", "Hydrogen", 1, 1.008},
	{"He", "Helium", 2, 4.0026},
	{"Li", "Lithium", 3, 6.94},
	{"Be", "Beryllium", 4, 9.0122},
	{"B", "Boron", 5, 10.81},
	{"C", "Carbon", 6, 12.011},
	{"N", "Nitrogen", 7, 14.007},
	{"O", "Oxygen", 8, 15.999},
	{"F", "Fluorine", 9, 18.998},
	{"Ne", "Neon", 10, 20.180},
	{"Na", "Sodium", 11, 22.990},
	{"Mg", "Magnesium", 12, 24.305},
	{"Al", "Aluminium", 13, 26.982},
	{"Si", "Silicon", 14, 28.085},
	{"P", "Phosphorus", 15, 30.974},
	{"S", "Sulfur", 16, 32.06},
	{"Cl", "Chlorine", 17, 35.45},
	{"Ar", "Argon", 18, 39.948},
	{"K", "Potassium", 19, 39.098},
	{"Ca", "Calcium", 20, 40.078},
	{"Sc", "Scandium", 21, 44.956},
	{"Ti", "Titanium", 22, 47.867},
	{"V", "Vanadium", 23, 50.942},
	{"Cr", "Chromium", 24, 51.996},
	{"Mn", "Manganese", 25, 54.938},
	{"Fe", "Iron", 26, 55.845},
	{"Co", "Cobalt", 27, 58.933},
	{"Ni", "Nickel", 28, 58.693},
	{"Cu", "Copper", 29, 63.546},
	{"Zn", "Zinc", 30, 65.38},
	{"Ga", "Gallium", 31, 69.723},
	{"Ge", "Germanium", 32, 72.630},
	{"As", "Arsenic", 33, 74.922},
	{"Se", "Selenium", 34, 78.971},
	{"Br", "Bromine", 35, 79.904},
	{"Kr", "Krypton", 36, 83.798},
	{"Rb", "Rubidium", 37, 85.468},
	{"Sr", "Strontium", 38, 87.62},
	{"Y", "Yttrium", 39, 88.906},
	{"Zr", "Zirconium", 40, 91.224},
	{"Nb", "Niobium", 41, 92.906},
	{"Mo", "Molybdenum", 42, 95.95},
	{"Tc", "Technetium", 43, 98},
	{"Ru", "Ruthenium", 44, 101.07},
	{"Rh", "Rhodium", 45, 102.91},
	{"Pd", "Palladium", 46, 106.42},
	{"Ag", "Silver", 47, 107.87},
	{"Cd", "Cadmium", 48, 112.41},
	{"In", "Indium", 49, 114.82},
	{"Sn", "Tin", 50, 118.71},
	{"Sb", "Antimony", 51, 121.76},
	{"Te", "Tellurium", 52, 127.60},
	{"I", "Iodine", 53, 126.90},
	{"Xe", "Xenon", 54, 131.29},
	{"Cs", "Caesium", 55, 132.91},
	{"Ba", "Barium", 56, 137.33},
	{"La", "Lanthanum", 57, 138.91},
	{"Ce", "Cerium", 58, 140.12},
	{"Pr", "Praseodymium", 59, 140.91},
	{"Nd", "Neodymium", 60, 144.24},
	{"Pm", "Promethium", 61, 145},
	{"Sm", "Samarium", 62, 150.36},
	{"Eu", "Europium", 63, 151.96},
	{"Gd", "Gadolinium", 64, 157.25},
	{"Tb", "Terbium", 65, 158.93},
	{"Dy", "Dysprosium", 66, 162.50},
	{"Ho", "Holmium", 67, 164.93},
	{"Er", "Erbium", 68, 167.26},
	{"Tm", "Thulium", 69, 168.93},
	{"Yb", "Ytterbium", 70, 173.05},
	{"Lu", "Lutetium", 71, 174.97},
	{"Hf", "Hafnium", 72, 178.49},
	{"Ta", "Tantalum", 73, 180.95},
	{"W", "Tungsten", 74, 183.84},
	{"Re", "Rhenium", 75, 186.21},
	{"Os", "Osmium", 76, 190.23},
	{"Ir", "Iridium", 77, 192.22},
	{"Pt", "Platinum", 78, 195.08},
	{"Au", "Gold", 79, 196.97},
	{"Hg", "Mercury", 80, 200.59},
	{"Tl", "Thallium", 81, 204.38},
	{"Pb", "Lead", 82, 207.2},
	{"Bi", "Bismuth", 83, 208.98},
	{"Po", "Polonium", 84, 209},
	{"At", "Astatine", 85, 210},
	{"Rn", "Radon", 86, 222},
	{"Fr", "Francium", 87, 223},
	{"Ra", "Radium", 88, 226},
	{"Ac", "Actinium", 89, 227},
	{"Th", "Thorium", 90, 232.04},
	{"Pa", "Protactinium", 91, 231.04},
	{"U", "Uranium", 92, 238.03},
	{"Np", "Neptunium", 93, 237},
	{"Pu", "Plutonium", 94, 244},
	{"Am", "Americium", 95, 243},
	{"Cm", "Curium", 96, 247},
}

var bySymbol = func() map[string]Element {
	m := make(map[string]Element, len(elements))
	for _, e := range elements {
		m[e.Symbol] = e
	}
	return m
}()

// Lookup finds an element by its case-sensitive symbol.
func Lookup(symbol string) (Element, bool) {
	e, ok := bySymbol[symbol]
	return e, ok
}
