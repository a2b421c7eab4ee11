package viewer

func NewForPlatform(goos string, options ...Option) *Publisher {
	p := New(options...)
	p.goos = goos
	return p
}

func (x *Publisher) OpenArgs(path string) ([]string, error) {
	return x.openArgs(path)
}
