package cmd

import (
	"github.com/etnz/captable"
	"github.com/etnz/captable/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the cts commands.
func Completion() *complete.Command {
	scenario := predict.Or(predict.Files("*.yaml"), predict.Files("*.yml"), predict.Files("*.json"), predict.Files("*.jsonl"))
	policies := predict.Set(captable.PolicyNames())
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"scenario-file": scenario,
			"currency":      predict.Something,
			"v":             predict.Nothing,
			"raw":           predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"build": {
				Flags: map[string]complete.Predictor{
					"f":       scenario,
					"founder": predict.Something,
					"r":       predict.Something,
					"policy":  policies,
					"json":    predict.Nothing,
					"jsonl":   predict.Nothing,
					"q":       predict.Something,
				},
			},
			"compare": {
				Flags: map[string]complete.Predictor{
					"f":       scenario,
					"founder": predict.Something,
					"r":       predict.Something,
					"a":       policies,
					"b":       policies,
					"json":    predict.Nothing,
				},
			},
			"project": {
				Flags: map[string]complete.Predictor{
					"s":     predict.Something,
					"n":     predict.Something,
					"own":   predict.Something,
					"round": predict.Something,
				},
			},
			"topic": {
				Flags: map[string]complete.Predictor{"l": predict.Nothing},
				Args:  predict.Set(append(topics, "readme", "*")),
			},
		},
	}
}
