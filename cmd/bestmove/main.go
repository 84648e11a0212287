// bestmove runs the search engine to a fixed depth or time budget on a given
// position and prints the chosen move in UCI notation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/arbiter-chess/engine/pkg/board/fen"
	"github.com/arbiter-chess/engine/pkg/search"
	"github.com/seekerror/logw"
)

var (
	position = flag.String("fen", "", "Position to search (default to standard start)")
	depth    = flag.Int("depth", 6, "Ply depth limit (0 = no limit)")
	timeMs   = flag.Int("time", 1000, "Time budget in milliseconds (0 = no limit)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: bestmove [options]

bestmove searches a position and prints the chosen move.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *position == "" {
		*position = fen.Initial
	}

	pos, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	e := search.NewEngine()
	move, score := e.FindBestMove(ctx, pos, *depth, *timeMs)

	pv := e.LastPV()
	fmt.Printf("info depth %v score %v nodes %v time %v pv %v\n", pv.Depth, pv.Score, pv.Nodes, pv.Time, pv.Moves)
	fmt.Printf("bestmove %v score %v\n", move.ToUCI(), score)
}
