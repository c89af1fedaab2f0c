package instance

import "github.com/katalvlaran/knapsack/knapsack"

// Report is the external form of a solver result.
type Report struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Value     int64  `json:"value" yaml:"value"`
	// Optimal is 1 when Value is provably optimal, 0 otherwise.
	Optimal   int   `json:"optimal" yaml:"optimal"`
	Selection []int `json:"selection" yaml:"selection,flow"`

	Nodes  int `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Pruned int `json:"pruned,omitempty" yaml:"pruned,omitempty"`
	Cells  int `json:"cells,omitempty" yaml:"cells,omitempty"`
}

// NewReport flattens res into its external form.
func NewReport(name string, algo knapsack.Algorithm, res knapsack.Result) Report {
	r := Report{
		Name:      name,
		Algorithm: algo.String(),
		Value:     res.Value,
		Selection: res.Selection,
		Nodes:     res.Stats.Nodes,
		Pruned:    res.Stats.Pruned,
		Cells:     res.Stats.Cells,
	}
	if res.Optimal {
		r.Optimal = 1
	}
	if r.Selection == nil {
		r.Selection = []int{}
	}

	return r
}

// Solve runs the solver selected by opts on the instance and reports the
// outcome. A non-zero inst.Tolerance is used when opts.Tolerance is zero.
func Solve(name string, inst *Instance, opts knapsack.Options) (Report, error) {
	items, err := inst.Items()
	if err != nil {
		return Report{}, err
	}
	if opts.Tolerance == 0 {
		opts.Tolerance = inst.Tolerance
	}
	res, err := knapsack.Solve(items, inst.Capacity, opts)
	if err != nil {
		return Report{}, err
	}

	return NewReport(name, opts.Algo, res), nil
}
