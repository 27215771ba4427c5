package domain

// Kind identifies which menu task produced a query.
type Kind string

const (
	KindQuadratic Kind = "quadratic"
	KindSystem2   Kind = "system2"
	KindSystem3   Kind = "system3"
)

// Query is the free-text query sent to the computational service together
// with the task that produced it.
type Query struct {
	Kind Kind
	Text string
}

// Quadratic holds raw coefficient input for ax^2 + bx + c = 0.
// Fields are kept as the user typed them; validation happens in usecase.
type Quadratic struct {
	A string
	B string
	C string
}

// TwoUnknownSystem holds raw coefficients for two linear equations
// a1*x + b1*y = c1 and a2*x + b2*y = c2.
type TwoUnknownSystem struct {
	A1, B1, C1 string
	A2, B2, C2 string
}

// ThreeUnknownSystem holds raw coefficients for three linear equations
// of the form a*x + b*y + c*z = d.
type ThreeUnknownSystem struct {
	A1, B1, C1, D1 string
	A2, B2, C2, D2 string
	A3, B3, C3, D3 string
}
