package ui

import (
	"strings"
	"testing"

	"pocketpet/internal/pet"
)

func TestFaceEyesFollowState(t *testing.T) {
	awake := pet.State{Mood: pet.MoodContent}
	if !strings.Contains(Face(awake, 0), "●") {
		t.Error("awake face should have open eyes")
	}

	asleep := pet.State{Sleeping: true, Mood: pet.MoodSleeping}
	got := Face(asleep, 0)
	if strings.Contains(got, "●") || strings.Contains(got, "◉") {
		t.Error("sleeping face should have closed eyes")
	}

	watching := pet.State{OwnerPresent: true, Mood: pet.MoodContent}
	if !strings.Contains(Face(watching, 0), "◉") {
		t.Error("face should track the owner when present")
	}
}

func TestFaceMouthFollowsMood(t *testing.T) {
	happy := Face(pet.State{Mood: pet.MoodHappy}, 0)
	sad := Face(pet.State{Mood: pet.MoodSad}, 0)
	hungry := Face(pet.State{Mood: pet.MoodHungry}, 0)
	content := Face(pet.State{Mood: pet.MoodContent}, 0)

	if happy == sad || happy == content {
		t.Error("happy mouth should differ from sad and neutral")
	}
	if sad != hungry {
		t.Error("sad and hungry share the frown")
	}
}

func TestFaceBounceCycle(t *testing.T) {
	st := pet.State{Mood: pet.MoodContent}

	if Face(st, 0) != Face(st, 4) {
		t.Error("bounce should repeat every four frames")
	}
	if Face(st, 0) == Face(st, 2) {
		t.Error("bounce should actually move the face")
	}

	// Constant height keeps the layout from jittering.
	h := strings.Count(Face(st, 0), "\n")
	for frame := 1; frame < 4; frame++ {
		if strings.Count(Face(st, frame), "\n") != h {
			t.Errorf("frame %d changed the face height", frame)
		}
	}
}
