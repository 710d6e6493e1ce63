package synthesizer

import (
	"sort"

	"github.com/flagen/flagen/internal/errors"
	"github.com/flagen/flagen/internal/models"
	"github.com/flagen/flagen/internal/templates"
	"github.com/flagen/flagen/internal/utils"
	"github.com/flagen/flagen/pkg/classenum"
)

// BuildEnumerationSpec plans one enumeration: derives the type name, assigns
// bits through a classenum universe (ascending display-name order, bit i is
// 1<<i), and fills the collision-checked registries. Input order never
// affects the result.
//
// Planning faults are fatal to the marker: a duplicate display name, two
// names mangling to the same constant identifier, or more implementers than
// the backing word holds.
func BuildEnumerationSpec(marker models.MarkerInterface, classes []models.ImplementingClass) (*models.EnumerationSpec, error) {
	enumName := marker.NameOverride()
	if enumName == "" {
		enumName = templates.DefaultTemplateUtils.BuildEnumerationName(marker.Name)
	}

	names := make([]string, len(classes))
	for i, class := range classes {
		names[i] = class.Name
	}

	universe, err := classenum.NewUniverse(names...)
	if err != nil {
		if capErr, ok := err.(*classenum.CapacityError); ok {
			return nil, errors.NewCapacityError(enumName, capErr.Count, classenum.MaxFlags, err)
		}
		if dupErr, ok := err.(*classenum.DuplicateNameError); ok {
			first, second := collisionPair(classes, dupErr.Name)
			return nil, errors.NewNameCollisionError(enumName, dupErr.Name, first, second)
		}
		return nil, errors.Wrapf(errors.GenerationErrorCode, err, "planning %s failed", enumName)
	}

	byName := make(map[string]models.ImplementingClass, len(classes))
	for _, class := range classes {
		byName[class.Name] = class
	}

	nameRegistry := utils.NewBaseRegistry[string, uint32]("flag name", "flag name", "flag value")
	nameRegistry.SetValidator(utils.NoDuplicateValidator[string, uint32]("flag name"))

	constRegistry := utils.NewBaseRegistry[string, models.ImplementingClass]("constant identifier", "constant identifier", "implementer")
	constRegistry.SetValidator(utils.NoDuplicateValidator[string, models.ImplementingClass]("constant identifier"))

	flags := make([]models.FlagAssignment, 0, universe.Size())
	for _, def := range universe.Flags() {
		class := byName[def.Name]
		constName := templates.DefaultTemplateUtils.BuildConstName(enumName, def.Name)

		if err := constRegistry.Register(constName, class); err != nil {
			first, _ := constRegistry.Get(constName)
			return nil, errors.NewNameCollisionError(enumName, constName, first.FQN(), class.FQN())
		}
		if err := nameRegistry.Register(def.Name, uint32(def.Flag)); err != nil {
			return nil, errors.Wrapf(errors.CollisionErrorCode, err, "planning %s failed", enumName)
		}

		flags = append(flags, models.FlagAssignment{
			DisplayName: def.Name,
			ConstName:   constName,
			Flag:        uint32(def.Flag),
			Class:       class,
		})
	}

	return &models.EnumerationSpec{
		Marker:   marker,
		EnumName: enumName,
		PkgPath:  marker.PkgPath,
		PkgName:  marker.PkgName,
		Dir:      marker.Dir,
		Flags:    flags,
		Full:     uint32(universe.Full()),
	}, nil
}

// collisionPair returns the qualified names of the first two classes sharing
// displayName, in deterministic order.
func collisionPair(classes []models.ImplementingClass, displayName string) (string, string) {
	var fqns []string
	for _, class := range classes {
		if class.Name == displayName {
			fqns = append(fqns, class.FQN())
		}
	}
	sort.Strings(fqns)

	switch len(fqns) {
	case 0:
		return "", ""
	case 1:
		return fqns[0], fqns[0]
	default:
		return fqns[0], fqns[1]
	}
}
