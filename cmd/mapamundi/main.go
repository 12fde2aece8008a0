package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/mapamundi/common"
	"github.com/milk9111/mapamundi/input"
	"github.com/milk9111/mapamundi/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw area outlines and camera state")
	watch := flag.Bool("watch", false, "reload prefabs when files under the prefab dir change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	panName := flag.String("pan", "left", "mouse button that pans the map: left, middle or right")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory checked for prefab overrides")
	flag.Parse()

	pan, err := input.ParseButton(*panName)
	if err != nil {
		log.Fatal(err)
	}
	prefabs.Dir = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("mapamundi")
	ebiten.SetTPS(common.TPS)

	game := NewGame(Options{Debug: *debug, Watch: *watch, Pan: pan})
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
