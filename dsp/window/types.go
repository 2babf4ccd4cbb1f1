package window

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeBartlett
	TypeWelch
	TypeHann
	TypeHamming
	TypeNuttall3
	TypeNuttall3A
	TypeNuttall3B
	TypeNuttall4
	TypeNuttall4A
	TypeNuttall4B
	TypeNuttall4C
	TypeKaiser20
	TypeKaiser25
	TypeKaiser30
	TypeKaiser35
	TypeKaiser40
	TypeKaiser45
	TypeKaiser50
	TypeKaiser55
	TypeKaiser60
	TypeKaiser65
	TypeKaiser70
	TypeHFT116D
	TypeHFT248D

	typeCount
)

// Family groups window types by their closed form.
type Family int

const (
	FamilyRectangular Family = iota
	FamilyPolynomial
	FamilyCosineSum
	FamilyKaiser
	FamilyFlatTop
)

var familyNames = [...]string{"rectangular", "polynomial", "cosine-sum", "kaiser", "flat-top"}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return "unknown"
	}
	return familyNames[f]
}

// Metadata holds static properties of a window type.
type Metadata struct {
	// Name is the canonical uppercase name accepted by ParseType.
	Name   string
	Family Family
	// IdealOverlap is the segment overlap fraction recommended for
	// averaged spectra.
	IdealOverlap float64
	// Alpha is the Kaiser shape parameter, 0 for other families.
	Alpha float64
}

type definition struct {
	Metadata
	// terms are the cosine-sum coefficients a_k of sum a_k cos(k*2*pi*x).
	terms []float64
	// power is p in 1-|2x-1|^p for the polynomial family.
	power float64
}

var definitions = [typeCount]definition{
	TypeRectangular: {Metadata: Metadata{Name: "RECTANGULAR", Family: FamilyRectangular}},
	TypeBartlett:    {Metadata: Metadata{Name: "BARTLETT", Family: FamilyPolynomial, IdealOverlap: 0.5}, power: 1},
	TypeWelch:       {Metadata: Metadata{Name: "WELCH", Family: FamilyPolynomial, IdealOverlap: 0.293}, power: 2},
	TypeHann: {
		Metadata: Metadata{Name: "HANNING", Family: FamilyCosineSum, IdealOverlap: 0.5},
		terms:    []float64{0.5, -0.5},
	},
	TypeHamming: {
		Metadata: Metadata{Name: "HAMMING", Family: FamilyCosineSum, IdealOverlap: 0.5},
		terms:    []float64{0.54, -0.46},
	},
	TypeNuttall3: {
		Metadata: Metadata{Name: "NUTTALL3", Family: FamilyCosineSum, IdealOverlap: 0.647},
		terms:    []float64{0.375, -0.5, 0.125},
	},
	TypeNuttall3A: {
		Metadata: Metadata{Name: "NUTTALL3A", Family: FamilyCosineSum, IdealOverlap: 0.612},
		terms:    []float64{0.40897, -0.5, 0.09103},
	},
	TypeNuttall3B: {
		Metadata: Metadata{Name: "NUTTALL3B", Family: FamilyCosineSum, IdealOverlap: 0.598},
		terms:    []float64{0.4243801, -0.4973406, 0.0782793},
	},
	TypeNuttall4: {
		Metadata: Metadata{Name: "NUTTALL4", Family: FamilyCosineSum, IdealOverlap: 0.705},
		terms:    []float64{0.3125, -0.46875, 0.1875, -0.03125},
	},
	TypeNuttall4A: {
		Metadata: Metadata{Name: "NUTTALL4A", Family: FamilyCosineSum, IdealOverlap: 0.68},
		terms:    []float64{0.338946, -0.481973, 0.161054, -0.018027},
	},
	TypeNuttall4B: {
		Metadata: Metadata{Name: "NUTTALL4B", Family: FamilyCosineSum, IdealOverlap: 0.663},
		terms:    []float64{0.355768, -0.487396, 0.144232, -0.012604},
	},
	TypeNuttall4C: {
		Metadata: Metadata{Name: "NUTTALL4C", Family: FamilyCosineSum, IdealOverlap: 0.656},
		terms:    []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411},
	},
	TypeKaiser20: {Metadata: Metadata{Name: "KAISER20", Family: FamilyKaiser, IdealOverlap: 0.534, Alpha: 2.0}},
	TypeKaiser25: {Metadata: Metadata{Name: "KAISER25", Family: FamilyKaiser, IdealOverlap: 0.583, Alpha: 2.5}},
	TypeKaiser30: {Metadata: Metadata{Name: "KAISER30", Family: FamilyKaiser, IdealOverlap: 0.619, Alpha: 3.0}},
	TypeKaiser35: {Metadata: Metadata{Name: "KAISER35", Family: FamilyKaiser, IdealOverlap: 0.647, Alpha: 3.5}},
	TypeKaiser40: {Metadata: Metadata{Name: "KAISER40", Family: FamilyKaiser, IdealOverlap: 0.67, Alpha: 4.0}},
	TypeKaiser45: {Metadata: Metadata{Name: "KAISER45", Family: FamilyKaiser, IdealOverlap: 0.689, Alpha: 4.5}},
	TypeKaiser50: {Metadata: Metadata{Name: "KAISER50", Family: FamilyKaiser, IdealOverlap: 0.705, Alpha: 5.0}},
	TypeKaiser55: {Metadata: Metadata{Name: "KAISER55", Family: FamilyKaiser, IdealOverlap: 0.719, Alpha: 5.5}},
	TypeKaiser60: {Metadata: Metadata{Name: "KAISER60", Family: FamilyKaiser, IdealOverlap: 0.731, Alpha: 6.0}},
	TypeKaiser65: {Metadata: Metadata{Name: "KAISER65", Family: FamilyKaiser, IdealOverlap: 0.741, Alpha: 6.5}},
	TypeKaiser70: {Metadata: Metadata{Name: "KAISER70", Family: FamilyKaiser, IdealOverlap: 0.751, Alpha: 7.0}},
	TypeHFT116D: {
		Metadata: Metadata{Name: "HFT116D", Family: FamilyFlatTop, IdealOverlap: 0.782},
		terms:    []float64{1, -1.9575375, 1.4780705, -0.6367431, 0.1228389, -0.0066288},
	},
	TypeHFT248D: {
		Metadata: Metadata{Name: "HFT248D", Family: FamilyFlatTop, IdealOverlap: 0.841},
		terms: []float64{
			1, -1.985844164102, 1.791176438506, -1.282075284005, 0.667777530266,
			-0.240160796576, 0.056656381764, -0.008134974479, 0.000624544650,
			-0.000019808998, 0.000000132974,
		},
	},
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, typeCount)
	for t := range typeCount {
		m[definitions[t].Name] = t
	}
	return m
}()

// Valid reports whether t belongs to the supported set.
func (t Type) Valid() bool {
	return t >= 0 && t < typeCount
}

// String returns the canonical name of t.
func (t Type) String() string {
	if !t.Valid() {
		return "UNKNOWN"
	}
	return definitions[t].Name
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if !t.Valid() {
		return Metadata{Name: "UNKNOWN"}
	}
	return definitions[t].Metadata
}

// Types lists every supported window type in declaration order.
func Types() []Type {
	out := make([]Type, 0, typeCount)
	for t := range typeCount {
		out = append(out, t)
	}
	return out
}

// Lookup resolves a canonical uppercase name such as "HANNING" or
// "KAISER35".
func Lookup(name string) (Type, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// ParseType resolves a canonical uppercase name and falls back to
// TypeRectangular for anything it does not recognize.
func ParseType(name string) Type {
	if t, ok := Lookup(name); ok {
		return t
	}
	return TypeRectangular
}

// IdealOverlap returns the recommended segment overlap fraction for t,
// from 0 for the rectangular window up to 0.841 for HFT248D.
func IdealOverlap(t Type) float64 {
	return Info(t).IdealOverlap
}
