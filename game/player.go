package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexigrid/tilemapping"
	"github.com/domino14/lexigrid/turnplayer"
)

// PlayerInfo describes a seat at the table.
type PlayerInfo struct {
	Name   string
	Source turnplayer.MoveSource
}

type playerState struct {
	PlayerInfo

	rack   *tilemapping.Rack
	points int
	bingos int
	turns  int
}

func newPlayerState(info PlayerInfo) *playerState {
	return &playerState{
		PlayerInfo: info,
		rack:       tilemapping.NewRack(),
	}
}

func (p *playerState) throwRackIn(bag *tilemapping.Bag) {
	log.Debug().Str("rack", p.rack.String()).Str("player", p.Name).
		Msg("throwing rack in")
	bag.PutBack(p.rack.TilesOn())
	p.rack.Set(nil)
}

func (p *playerState) stateString(myturn bool) string {
	onturn := ""
	rackLetters := ""
	if myturn {
		onturn = "-> "
		rackLetters = p.rack.String()
	}
	return fmt.Sprintf("%4v%20v%9v %4v", onturn, p.Name, rackLetters, p.points)
}

type playerStates []*playerState
