package output

type Options struct {
	PrintCurl       bool
	PrintDetails    bool
	PrintAuth       bool
	PrintParameters bool

	EnableColor bool

	OutputFile string
	Overwrite  bool
}
