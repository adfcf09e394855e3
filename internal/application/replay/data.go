package replay

import "github.com/younwookim/moonbunny/internal/domain/entity"

// Version is written into every recording
const Version = "1.0"

// FrameInput records the input events and delta of a single tick
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	D  float64 `json:"d"`            // Delta in nominal frames
	LP bool    `json:"lp,omitempty"` // LeftPressed
	LR bool    `json:"lr,omitempty"` // LeftReleased
	RP bool    `json:"rp,omitempty"` // RightPressed
	RR bool    `json:"rr,omitempty"` // RightReleased
	JP bool    `json:"jp,omitempty"` // JumpPressed
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput packs one tick of events
func NewFrameInput(frame int, delta float64, events []entity.Event) FrameInput {
	fi := FrameInput{F: frame, D: delta}
	for _, ev := range events {
		switch e := ev.(type) {
		case entity.DirectionPressed:
			if e.Direction == entity.DirLeft {
				fi.LP = true
			} else {
				fi.RP = true
			}
		case entity.DirectionReleased:
			if e.Direction == entity.DirLeft {
				fi.LR = true
			} else {
				fi.RR = true
			}
		case entity.JumpPressed:
			fi.JP = true
		}
	}
	return fi
}

// Events unpacks the recorded flags in the order the input system emits
// them: presses, releases, then jump
func (fi FrameInput) Events() []entity.Event {
	var events []entity.Event
	if fi.LP {
		events = append(events, entity.DirectionPressed{Direction: entity.DirLeft})
	}
	if fi.RP {
		events = append(events, entity.DirectionPressed{Direction: entity.DirRight})
	}
	if fi.LR {
		events = append(events, entity.DirectionReleased{Direction: entity.DirLeft})
	}
	if fi.RR {
		events = append(events, entity.DirectionReleased{Direction: entity.DirRight})
	}
	if fi.JP {
		events = append(events, entity.JumpPressed{})
	}
	return events
}
