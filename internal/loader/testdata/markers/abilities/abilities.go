package abilities

//flagen::marker
type IAbility interface {
	AbilityName() string
}

type Fireball struct{}

func (f Fireball) AbilityName() string { return "fireball" }

type Heal struct{}

func (h *Heal) AbilityName() string { return "heal" }
