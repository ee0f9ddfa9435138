package ezmenulib

// Values is the container every prompting operation runs through. It owns
// the stream pair for the session and the baseline Format inherited by each
// prompt; a prompt carrying its own Format has it merged over the baseline,
// field by field.
//
// Construct one per interactive session and issue reads sequentially; a
// Values is not safe for concurrent use.
//
//	v := ezmenulib.NewValues(nil) // stdin/stdout
//	name, err := ezmenulib.Prompt[string](v, ezmenulib.NewWritten("your name"))
type Values struct {
	handle *Handle
	fmt    Format
}

// NewValues builds a container over the given handle. A nil handle means the
// standard streams.
func NewValues(h *Handle) *Values {
	if h == nil {
		h = DefaultHandle()
	}
	return &Values{handle: h, fmt: NewFormat()}
}

// Fmt sets the baseline Format inherited by every prompt issued through the
// container.
func (v *Values) Fmt(f Format) *Values {
	v.fmt = f
	return v
}

// Handle returns the stream pair the container reads and writes on.
func (v *Values) Handle() *Handle {
	return v.handle
}

// format resolves the effective Format for one prompt: the container
// baseline, overridden by the prompt's own Format where it set fields.
func (v *Values) format(custom *Format) Format {
	if custom == nil {
		return v.fmt
	}
	return v.fmt.Merge(*custom)
}
