package character

import (
	"github.com/Faultbox/live2d-viewer/pkg/motion"
	"github.com/Faultbox/live2d-viewer/pkg/scale"
)

// DefaultIdleGroup is the Cubism sample idle group name.
const DefaultIdleGroup = "Idle"

// builtin lists the sample characters in display order.
func builtin() []Character {
	profiles := scale.DefaultProfiles()

	return []Character{
		{
			ID:          "hiyori",
			Name:        "Hiyori",
			Description: "Official Live2D model with complex animations",
			ModelPath:   "/models/Hiyori/Hiyori.model3.json",
			IdleGroup:   DefaultIdleGroup,
			TapMode:     TapContextual,
			Features:    []string{"Idle", "Flick", "Tap", "Tap@Body", "Flick@Body"},
			Scale:       profiles["hiyori"],
		},
		{
			ID:          "rice",
			Name:        "Rice",
			Description: "Simple model with basic animations",
			ModelPath:   "/models/Rice/Rice.model3.json",
			IdleGroup:   DefaultIdleGroup,
			TapMode:     TapContextual,
			Features:    []string{"Idle", "Motion"},
			Scale:       profiles["rice"],
		},
		{
			ID:          "shizuku",
			Name:        "Shizuku",
			Description: "Model with numbered animations",
			ModelPath:   "/models/shizuku/runtime/shizuku.model3.json",
			IdleGroup:   "Idle",
			TapMode:     TapContextual,
			AutoCycle:   true,
			Features:    []string{"01", "02", "03", "04"},
			Scale:       profiles["shizuku"],
			Animations: motion.MetadataTable{
				"Idle":    {Description: "Resting/waiting state (default)", Priority: motion.PriorityIdle},
				"FlickUp": {Description: "Upward movement (yawn)", Priority: motion.PriorityNormal},
				"Tap":     {Description: "Touch/click animation", Priority: motion.PriorityForce},
				"Flick3":  {Description: "Quick movement", Priority: motion.PriorityNormal},
			},
		},
		{
			ID:          "haru",
			Name:        "Haru",
			Description: "Model with movement and touch animations",
			ModelPath:   "/models/Haru/Haru.model3.json",
			IdleGroup:   DefaultIdleGroup,
			TapMode:     TapContextual,
			Features:    []string{"Idle", "Motion", "Tap"},
			Scale:       profiles["haru"],
		},
		{
			ID:          "mao",
			Name:        "Mao",
			Description: "Feline model with movement animations",
			ModelPath:   "/models/Mao/Mao.model3.json",
			IdleGroup:   "mtn_01",
			TapMode:     TapContextual,
			AutoCycle:   true,
			Features:    []string{"mtn_01", "mtn_02", "mtn_03"},
			Scale:       profiles["mao"],
			Animations: motion.MetadataTable{
				"mtn_01": {Description: "Movement animation 01", Priority: motion.PriorityIdle, AutoPlay: true},
				"mtn_02": {Description: "Movement animation 02", Priority: motion.PriorityNormal},
				"mtn_03": {Description: "Movement animation 03", Priority: motion.PriorityNormal},
			},
		},
		{
			ID:          "mark",
			Name:        "Mark",
			Description: "Male model with simple animations",
			ModelPath:   "/models/Mark/Mark.model3.json",
			IdleGroup:   DefaultIdleGroup,
			TapMode:     TapRandom,
			Features:    []string{"Random"},
			Scale:       profiles["mark"],
			Animations: motion.MetadataTable{
				"motions": {Description: "Mark movement animations", Priority: motion.PriorityIdle, AutoPlay: true},
			},
		},
		{
			ID:          "natori",
			Name:        "Natori",
			Description: "Model with expressions and movements",
			ModelPath:   "/models/Natori/Natori.model3.json",
			IdleGroup:   DefaultIdleGroup,
			TapMode:     TapContextual,
			Features:    []string{"Idle", "Motion"},
			Scale:       profiles["natori"],
		},
		{
			ID:          "wanko",
			Name:        "Wanko",
			Description: "Canine model with resting animations",
			ModelPath:   "/models/Wanko/Wanko.model3.json",
			IdleGroup:   "idle",
			TapMode:     TapRandom,
			Features:    []string{"Idle", "Motion"},
			Scale:       profiles["wanko"],
			Animations: motion.MetadataTable{
				"idle":  {Description: "Wanko resting animations", Priority: motion.PriorityIdle, AutoPlay: true},
				"shake": {Description: "Shaking animations", Priority: motion.PriorityNormal},
				"touch": {Description: "Touch/petting animations", Priority: motion.PriorityForce},
			},
		},
		{
			ID:          "hiyori_free_en",
			Name:        "Hiyori Free EN",
			Description: "English edition of the Hiyori model",
			ModelPath:   "/models/hiyori_free_en/runtime/hiyori_free_t08.model3.json",
			IdleGroup:   DefaultIdleGroup,
			TapMode:     TapRandom,
			Features:    []string{"Idle", "Motion"},
			Scale:       profiles["hiyori_free_en"],
			Animations: motion.MetadataTable{
				"motions": {Description: "Hiyori Free EN movement animations", Priority: motion.PriorityIdle, AutoPlay: true},
			},
		},
	}
}
