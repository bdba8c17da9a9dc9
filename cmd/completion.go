package cmd

import (
	"github.com/etnz/holdings"
	"github.com/etnz/holdings/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the hcmp command line.
//
// Install it with COMP_INSTALL=1 hcmp.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"fetch": {
				Flags: map[string]complete.Predictor{
					"o":    predict.Files("*.json"),
					"fund": predict.Something,
					"cik":  predict.Something,
				},
			},
			"compare": {
				Flags: map[string]complete.Predictor{
					"f":    predict.Files("*.json"),
					"live": predict.Nothing,
					"json": predict.Nothing,
					"raw":  predict.Nothing,
					"sort": predict.Set(holdings.SortKeys()),
					"asc":  predict.Nothing,
					"q1":   predict.Something,
					"q2":   predict.Something,
				},
			},
			"topic": {
				Args: predict.Set(topics),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"bundle-file": predict.Files("*.json"),
			"model":       predict.Something,
			"currency":    predict.Something,
			"cache-dir":   predict.Dirs("*"),
			"v":           predict.Nothing,
		},
	}
}
