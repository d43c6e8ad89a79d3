package gallery

// Slideshow tracks the current slide of a gallery. The zero value has no slides.
type Slideshow struct {
	slides []Slide
	index  int
}

// NewSlideshow starts a slideshow at the first slide.
func NewSlideshow(slides []Slide) *Slideshow {
	return &Slideshow{slides: append([]Slide(nil), slides...)}
}

// Len returns the number of slides.
func (s *Slideshow) Len() int {
	return len(s.slides)
}

// Index returns the zero-based position of the current slide.
func (s *Slideshow) Index() int {
	return s.index
}

// Current returns the current slide; false when there are no slides.
func (s *Slideshow) Current() (Slide, bool) {
	if len(s.slides) == 0 {
		return Slide{}, false
	}
	return s.slides[s.index], true
}

// Upcoming returns the slide after the current one, wrapping around.
func (s *Slideshow) Upcoming() (Slide, bool) {
	if len(s.slides) == 0 {
		return Slide{}, false
	}
	return s.slides[(s.index+1)%len(s.slides)], true
}

// Next advances one slide, wrapping to the first.
func (s *Slideshow) Next() {
	s.GoTo(s.index + 1)
}

// Prev goes back one slide, wrapping to the last.
func (s *Slideshow) Prev() {
	s.GoTo(s.index - 1)
}

// GoTo jumps to index modulo the number of slides.
func (s *Slideshow) GoTo(index int) {
	n := len(s.slides)
	if n == 0 {
		s.index = 0
		return
	}
	s.index = ((index % n) + n) % n
}
