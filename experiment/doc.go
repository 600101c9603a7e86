// Package experiment runs parameter sweeps of the swarm solver and writes
// their results as CSV reports.
//
// A Plan names one steered parameter, its range and a repetition count,
// plus fixed values for every other tunable and the problem file:
//
//	{
//	  "algorithm": "nature",
//	  "steered_param": {"name": "w", "min_val": 0.2, "max_val": 1.0,
//	                    "step": 0.2, "repetitions": 5},
//	  "other_params": {"w": 0.8, "c1": 0.5, "c2": 0.5,
//	                   "num_of_particles": 10, "max_iter": 50,
//	                   "filename": "size11_instance.csv"}
//	}
//
// Plans load from JSON or YAML (by file extension) and are checked with
// struct-tag validation before a sweep starts. Steerable names are
// w, c1, c2, num_of_particles and max_iter; anything else is a
// configuration error (ErrUnknownParameter) and aborts the sweep.
//
// For value = min, min+step, … ≤ max the Runner solves the instance
// `repetitions` times and records (value, fitness, seconds). Integer
// parameters are truncated. The report is written to
// results_<plan basename>.csv.
package experiment
