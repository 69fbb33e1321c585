package bldfile

// Record collects every setting declared for a single program scope in the
// build description file.
type Record struct {
	Name       string
	SourceDir  string
	BinDir     string
	FileList   string
	OptionSpec string
}

// List is the result of parsing a build description file. Records preserves
// the order in which the prog= entries first appeared.
type List struct {
	Records []*Record
	ByName  map[string]*Record
}

// NewList creates an initialized, empty List.
func NewList() *List {
	return &List{
		Records: []*Record{},
		ByName:  make(map[string]*Record),
	}
}

// open returns the record for the given program, creating it on first sight.
// A re-declared program keeps its original position in Records.
func (l *List) open(name string) *Record {
	if rec, ok := l.ByName[name]; ok {
		return rec
	}

	rec := &Record{Name: name}
	l.Records = append(l.Records, rec)
	l.ByName[name] = rec
	return rec
}
