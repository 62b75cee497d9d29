// Package roadledger is an interactive registry of Rwandan cities, the roads
// between them and the budget assigned to each road.
//
// Every session starts from a fixed seed (7 cities, 9 budgeted roads). The
// operator then adds or renames cities, adds roads and sets budgets through a
// numbered menu, and every successful change rewrites two fixed-width tables
// (cities.txt, roads.txt) and, optionally, a SQLite mirror.
//
// Packages:
//
//	core/     - City, Road, Registry and Graph: the invariant-keeping model
//	matrix/   - dense growable float64 grid + structural validators
//	snapshot/ - city/road table rendering and the file, SQLite and fan-out sinks
//	metrics/  - Prometheus counters and gauges for operator commands
//	console/  - the menu loop, one core operation per command
//	cmd/      - roadledger binary (urfave/cli flags, logrus setup)
//
// Quick ASCII example (seed, partial):
//
//	Rubavu───Musanze───Kigali
//	            │    ╲    │
//	        Nyagatare  Muhanga───Huye
//
//	go run ./cmd/roadledger --dir ./out
package roadledger
