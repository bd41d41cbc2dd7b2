package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"go-simon/game"
	"go-simon/midi"
	"go-simon/theme"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "detect":
		detectLaunchpad()
	case "leds":
		testQuadrants()
	case "tones":
		if len(os.Args) < 3 {
			fmt.Println("usage: padtest tones <output port name>")
			return
		}
		testTones(os.Args[2])
	case "poll":
		pollDevices()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Pad Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list          - List all MIDI ports")
	fmt.Println("  detect        - Find Launchpad X")
	fmt.Println("  leds          - Light each game quadrant in turn, then echo presses")
	fmt.Println("  tones <port>  - Play the four pad tones on a synth port")
	fmt.Println("  poll          - Poll for device changes")
}

type ports struct {
	ins  []drivers.In
	outs []drivers.Out
}

// getPorts lists ports with a timeout (CoreMIDI can hang)
func getPorts() (ports, bool) {
	ch := make(chan ports, 1)
	go func() {
		ch <- ports{ins: gomidi.GetInPorts(), outs: gomidi.GetOutPorts()}
	}()

	select {
	case r := <-ch:
		return r, true
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
		return ports{}, false
	}
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	r, ok := getPorts()
	if !ok {
		return
	}
	for i, p := range r.ins {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
	fmt.Println("\n=== MIDI Output Ports ===")
	for i, p := range r.outs {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
}

func isLaunchpad(name string) bool {
	name = strings.ToLower(name)
	return strings.Contains(name, "launchpad") && strings.Contains(name, "midi")
}

func findLaunchpad() (drivers.In, drivers.Out) {
	r, ok := getPorts()
	if !ok {
		return nil, nil
	}
	var in drivers.In
	var out drivers.Out
	for _, p := range r.ins {
		if isLaunchpad(p.String()) {
			in = p
			break
		}
	}
	for _, p := range r.outs {
		if isLaunchpad(p.String()) {
			out = p
			break
		}
	}
	return in, out
}

func detectLaunchpad() {
	fmt.Println("Looking for Launchpad X...")

	in, out := findLaunchpad()
	if in != nil {
		fmt.Printf("Found input: %s\n", in.String())
	}
	if out != nil {
		fmt.Printf("Found output: %s\n", out.String())
	}

	if in != nil && out != nil {
		fmt.Println("\nLaunchpad X detected!")
	} else {
		fmt.Println("\nLaunchpad X not found")
	}
}

func testQuadrants() {
	in, out := findLaunchpad()
	if out == nil {
		fmt.Println("No Launchpad found")
		return
	}

	lp, err := midi.NewLaunchpadController(out.String(), in, out)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer lp.Close()

	th := theme.New(theme.Default())
	lights := midi.NewLights(th.PadGrid(), nil)
	lights.SetController(lp)

	for c := game.Color(0); c < game.NumColors; c++ {
		fmt.Printf("Lighting %s\n", c)
		lights.SetColors(game.Bit(c))
		time.Sleep(500 * time.Millisecond)
	}
	lights.SetColors(game.MaskAll)

	fmt.Println("Press pads to see quadrant events. Press Enter to quit...")
	go func() {
		for ev := range lp.ButtonEvents() {
			state := "up"
			if ev.Down {
				state = "down"
			}
			fmt.Printf("  %-6s %s\n", ev.Color, state)
		}
	}()
	fmt.Scanln()

	lights.SetColors(0)
	fmt.Println("Done!")
}

func testTones(port string) {
	tones, err := midi.OpenToneOut(port, 1)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	for c := game.Color(0); c < game.NumColors; c++ {
		t := game.ToneFor(c)
		fmt.Printf("%-6s %4d Hz -> note %d\n", c, t, midi.FreqToNote(t))
		tones.Play(t)
		time.Sleep(400 * time.Millisecond)
		tones.Stop()
		time.Sleep(100 * time.Millisecond)
	}
	fmt.Println("Done!")
}

func pollDevices() {
	fmt.Println("Polling for device changes every 2 seconds...")
	fmt.Println("Connect/disconnect Launchpad to test. Ctrl+C to exit.")

	lastIn := ""
	lastOut := ""

	for {
		r, ok := getPorts()
		if !ok {
			time.Sleep(2 * time.Second)
			continue
		}

		// Build current state
		var inNames, outNames []string
		for _, p := range r.ins {
			inNames = append(inNames, p.String())
		}
		for _, p := range r.outs {
			outNames = append(outNames, p.String())
		}

		currentIn := strings.Join(inNames, ",")
		currentOut := strings.Join(outNames, ",")

		if currentIn != lastIn || currentOut != lastOut {
			fmt.Printf("\n[%s] Device change detected!\n", time.Now().Format("15:04:05"))
			fmt.Printf("  Inputs: %v\n", inNames)
			fmt.Printf("  Outputs: %v\n", outNames)

			for _, name := range inNames {
				if isLaunchpad(name) {
					fmt.Println("  -> Launchpad detected!")
				}
			}

			lastIn = currentIn
			lastOut = currentOut
		}

		time.Sleep(2 * time.Second)
	}
}
