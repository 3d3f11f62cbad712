package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"amalgam/internal/game"
	"amalgam/internal/shared"
)

// Local two-human terminal game. Both players share one keyboard; every
// intent goes straight to the engine and errors are printed verbatim.
func main() {
	s := game.NewSession(game.DefaultRules())
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Amalgam — two players, one board.")
	fmt.Println("Commands: auto | place <kind> <x> <y> | moves <x> <y> | move <x1> <y1> <x2> <y2>")
	fmt.Println("          swap <x1> <y1> <x2> <y2> | confirm <ability> [x y ...] | cancel")
	fmt.Println("          select <x> <y> | land <x> <y> | reset | board | quit")

	for s.Winner() == nil {
		printBoard(s)
		printTurn(s)

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		if err := dispatch(s, strings.Fields(line)); err != nil {
			if err == errQuit {
				return
			}
			fmt.Println("!", err)
		}
	}

	printBoard(s)
	win := s.Winner()
	fmt.Printf("\n%s wins by %s.\n", strings.ToUpper(win.Winner.String()), win.Kind)
}

var errQuit = fmt.Errorf("quit")

func dispatch(s *game.Session, args []string) error {
	if len(args) == 0 {
		return nil
	}
	p := s.CurrentPlayer()
	switch args[0] {
	case "quit", "exit":
		return errQuit
	case "board":
		return nil
	case "auto":
		return s.AutoSetup()
	case "place":
		if len(args) != 4 {
			return fmt.Errorf("usage: place <kind> <x> <y>")
		}
		kind, ok := shared.ParsePieceKind(args[1])
		if !ok {
			return fmt.Errorf("unknown piece kind %q", args[1])
		}
		at, err := coordArg(args[2], args[3])
		if err != nil {
			return err
		}
		return s.Place(p, kind, at)
	case "moves":
		if len(args) != 3 {
			return fmt.Errorf("usage: moves <x> <y>")
		}
		from, err := coordArg(args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Println("destinations:", coordList(s.LegalDestinations(from)))
		return nil
	case "move", "swap":
		if len(args) != 5 {
			return fmt.Errorf("usage: %s <x1> <y1> <x2> <y2>", args[0])
		}
		from, err := coordArg(args[1], args[2])
		if err != nil {
			return err
		}
		to, err := coordArg(args[3], args[4])
		if err != nil {
			return err
		}
		if args[0] == "swap" {
			return s.Swap(p, from, to)
		}
		return s.Move(p, from, to)
	case "confirm":
		if len(args) < 2 || len(args)%2 != 0 {
			return fmt.Errorf("usage: confirm <ability> [x y ...]")
		}
		kind, ok := shared.ParseAbilityKind(args[1])
		if !ok {
			return fmt.Errorf("unknown ability %q", args[1])
		}
		var targets []shared.Coord
		for i := 2; i+1 < len(args); i += 2 {
			c, err := coordArg(args[i], args[i+1])
			if err != nil {
				return err
			}
			targets = append(targets, c)
		}
		return s.ConfirmAbility(p, kind, targets)
	case "cancel":
		return s.CancelAbility(p)
	case "select":
		if len(args) != 3 {
			return fmt.Errorf("usage: select <x> <y>")
		}
		piece, err := coordArg(args[1], args[2])
		if err != nil {
			return err
		}
		return s.SelectLaunch(p, piece)
	case "land":
		if len(args) != 3 {
			return fmt.Errorf("usage: land <x> <y>")
		}
		dest, err := coordArg(args[1], args[2])
		if err != nil {
			return err
		}
		return s.LaunchTo(p, dest)
	case "reset":
		return s.ResetTurn(p)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func coordArg(xs, ys string) (shared.Coord, error) {
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil {
		return shared.Coord{}, fmt.Errorf("coordinates must be integers")
	}
	return shared.Coord{X: x, Y: y}, nil
}

func printTurn(s *game.Session) {
	p := s.CurrentPlayer()
	if s.Phase() == shared.PhaseSetup {
		fmt.Printf("\nSetup, placement %d of 16. %s to place", s.PlacementIndex(), p)
		for _, k := range []shared.PieceKind{shared.Ruby, shared.Pearl, shared.Amber, shared.Jade} {
			fmt.Printf("  %s:%d", k, s.GemAllotmentLeft(p, k))
		}
		fmt.Println()
		return
	}
	fmt.Printf("\n%s to act.\n", p)
	if s.TurnStep() == shared.StepAbility {
		for _, pa := range s.Pending(p) {
			if pa.Kind == shared.Launch {
				fmt.Printf("  pending %s:", pa.Kind)
				for _, opt := range pa.Options {
					fmt.Printf(" %s->%s", opt.Piece, coordList(opt.Landings))
				}
				fmt.Println()
				continue
			}
			var all []shared.Coord
			for _, pt := range pa.Pairs {
				all = append(all, pt.Targets...)
			}
			fmt.Printf("  pending %s: targets %s\n", pa.Kind, coordList(all))
		}
		if phase, piece, landings := s.LaunchState(); phase == shared.AwaitingLaunchDestination {
			fmt.Printf("  launching %s, land on %s\n", piece, coordList(landings))
		}
	}
}

func printBoard(s *game.Session) {
	fmt.Println()
	for y := 6; y >= -6; y-- {
		fmt.Printf("%3d ", y)
		for x := -6; x <= 6; x++ {
			c := shared.Coord{X: x, Y: y}
			if !game.IsValidIntersection(c) {
				fmt.Print("  ")
				continue
			}
			if pc := s.PieceAt(c); pc != nil {
				fmt.Printf(" %c", pieceLetter(pc))
				continue
			}
			fmt.Print(" .")
		}
		fmt.Println()
	}
	fmt.Print("    ")
	for x := -6; x <= 6; x++ {
		fmt.Printf("%2d", x)
	}
	fmt.Println()
	fmt.Println("    uppercase = south, lowercase = north")
}

func pieceLetter(pc *game.Piece) byte {
	var ch byte
	switch pc.Kind {
	case shared.Ruby:
		ch = 'R'
	case shared.Pearl:
		ch = 'P'
	case shared.Amber:
		ch = 'A'
	case shared.Jade:
		ch = 'J'
	case shared.Amalgam:
		ch = 'M'
	case shared.Portal:
		ch = 'O'
	default:
		ch = 'V'
	}
	if pc.Owner == shared.North {
		ch += 'a' - 'A'
	}
	return ch
}

func coordList(cs []shared.Coord) string {
	if len(cs) == 0 {
		return "(none)"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
