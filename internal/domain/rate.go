package domain

type Rate struct {
	Base  string
	Quote string
	Value float64
}

type RatePair struct {
	Base  string
	Quote string
}

func (p RatePair) Reversed() RatePair {
	return RatePair{
		Base:  p.Quote,
		Quote: p.Base,
	}
}

func (p RatePair) String() string {
	return p.Base + "/" + p.Quote
}
