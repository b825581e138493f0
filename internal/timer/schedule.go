package timer

import (
	"github.com/letsDanceDB/pomodoro-timer/internal/config"
	"github.com/letsDanceDB/pomodoro-timer/internal/models"
)

// BuildSchedule returns the fixed cyclic sequence for one full set: four
// work phases interleaved with three short breaks, closed by a single long
// break. Inputs are assumed already clamped by the settings layer; there
// is no error path here.
func BuildSchedule(workMinutes, shortBreakMinutes, longBreakMinutes int) []models.Phase {
	schedule := make([]models.Phase, 0, config.SchedulePhases)
	for i := 0; i < config.WorkPhasesPerSet; i++ {
		schedule = append(schedule, models.Phase{
			Kind:            models.PhaseWork,
			DurationSeconds: workMinutes * 60,
		})
		if i < config.WorkPhasesPerSet-1 {
			schedule = append(schedule, models.Phase{
				Kind:            models.PhaseShortBreak,
				DurationSeconds: shortBreakMinutes * 60,
			})
		}
	}
	return append(schedule, models.Phase{
		Kind:            models.PhaseLongBreak,
		DurationSeconds: longBreakMinutes * 60,
	})
}
