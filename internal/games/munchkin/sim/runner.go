package sim

// Runner drives a State with its collaborators, one Step per frame. Any
// collaborator may be nil.
type Runner struct {
	State    *State
	Input    InputSource
	Audio    AudioCue
	Score    ScoreDisplay
	Renderer Renderer
}

// Step polls input, advances the simulation and publishes the results.
func (r *Runner) Step() TickResult {
	var in Input
	if r.Input != nil {
		in.Directions = r.Input.PollDirections()
		in.Menu = r.Input.MenuKeyPressed()
	}

	res := r.State.Tick(in)
	if res.Aborted {
		return res
	}

	if r.Audio != nil {
		for _, c := range res.Cues {
			r.Audio.Play(c)
		}
	}
	if r.Score != nil && (res.ScoreChanged || res.MazeLoaded) {
		r.Score.Show(r.State.Score, r.State.HighScore)
	}
	if r.Renderer != nil {
		r.State.Present(r.Renderer)
	}
	return res
}
