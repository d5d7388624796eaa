package web

// ViewState is the single active panel on the search page. A request enters
// searching on submit and lands in exactly one of results/empty/error; each
// rendered document replaces the previous one wholesale.
type ViewState string

const (
	StateIdle    ViewState = "idle"
	StateResults ViewState = "results"
	StateEmpty   ViewState = "empty"
	StateError   ViewState = "error"
)

type SearchPageVM struct {
	Source      string
	Destination string
	State       ViewState
	Error       string
	Route       string
	Cards       []TripCardVM
}

func (vm SearchPageVM) ShowResults() bool { return vm.State == StateResults }
func (vm SearchPageVM) ShowEmpty() bool   { return vm.State == StateEmpty }
func (vm SearchPageVM) ShowError() bool   { return vm.State == StateError }

type TripCardVM struct {
	TrainNumber string
	TrainName   string
	SourceName  string
	SourceCode  string
	DestName    string
	DestCode    string
	Departs     string
	Arrives     string
	Duration    string
}
