// Copyright (c) 2025, FSG Modding.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package detail

import (
	"context"
	"math"
	"strings"

	"github.com/fsgmodding/modcheck/pkg/archive"
	"github.com/fsgmodding/modcheck/pkg/xmltree"
)

// Vehicle is one store vehicle record.
type Vehicle struct {
	FillSpray  FillSpray      `json:"fillSpray"`
	Flags      VehicleFlags   `json:"flags"`
	IconBase   *string        `json:"iconBase"`
	IconFile   *string        `json:"iconFile"`
	IconOrig   *string        `json:"iconOrig"`
	MasterType string         `json:"masterType"`
	Motor      VehicleEngine  `json:"motor"`
	ParentItem *string        `json:"parentItem"`
	Sorting    VehicleSorting `json:"sorting"`
	Specs      VehicleSpecs   `json:"specs"`
}

// VehicleSorting carries the fields the shop sorts and filters on.
type VehicleSorting struct {
	Brand           *string  `json:"brand"`
	Category        *string  `json:"category"`
	Combos          []string `json:"combos"`
	Name            *string  `json:"name"`
	TypeName        *string  `json:"typeName"`
	TypeDescription *string  `json:"typeDescription"`
	Year            *int     `json:"year"`
}

// VehicleFlags marks capabilities detected from the vehicle XML.
type VehicleFlags struct {
	Beacons   bool `json:"beacons"`
	Color     bool `json:"color"`
	Enterable bool `json:"enterable"`
	Lights    bool `json:"lights"`
	Motorized bool `json:"motorized"`
	Wheels    bool `json:"wheels"`
}

// VehicleEngine lists the motor configurations with computed power and
// speed curves.
type VehicleEngine struct {
	FuelType         *string      `json:"fuelType"`
	TransmissionType *string      `json:"transmissionType"`
	Motors           []MotorEntry `json:"motors"`
}

// MotorEntry is one motor configuration. The curves map motor RPM to
// horsepower and to ground speed through the lowest forward gear.
type MotorEntry struct {
	Name       string       `json:"name"`
	HorsePower []MotorValue `json:"horsePower"`
	MaxSpeed   int          `json:"maxSpeed"`
	SpeedKPH   []MotorValue `json:"speedKph"`
	SpeedMPH   []MotorValue `json:"speedMph"`
}

// MotorValue is one rounded point on a motor curve.
type MotorValue struct {
	RPM   int `json:"rpm"`
	Value int `json:"value"`
}

func newMotorValue(rpm, value float64) MotorValue {
	return MotorValue{
		RPM:   int(math.Round(rpm)),
		Value: int(math.Round(value)),
	}
}

// FillSpray describes what a vehicle can carry and spread.
type FillSpray struct {
	FillCat    []string    `json:"fillCat"`
	FillLevel  int         `json:"fillLevel"`
	FillType   []string    `json:"fillType"`
	SprayTypes []SprayType `json:"sprayTypes"`
}

// SprayType is one sprayer mode with its working width.
type SprayType struct {
	Fills []string `json:"fills"`
	Width *float64 `json:"width"`
}

// VehicleSpecs carries the free form spec block plus price, weight, and
// attacher joint compatibility.
type VehicleSpecs struct {
	Functions     []string       `json:"functions"`
	JointAccepts  []string       `json:"jointAccepts"`
	JointRequires []string       `json:"jointRequires"`
	Name          string         `json:"name"`
	Price         int            `json:"price"`
	Specs         map[string]int `json:"specs"`
	Weight        int            `json:"weight"`
}

func newVehicle() *Vehicle {
	return &Vehicle{
		FillSpray: FillSpray{
			FillCat:    []string{},
			FillType:   []string{},
			SprayTypes: []SprayType{},
		},
		MasterType: "vehicle",
		Motor: VehicleEngine{
			Motors: []MotorEntry{},
		},
		Sorting: VehicleSorting{
			Combos: []string{},
		},
		Specs: VehicleSpecs{
			Functions:     []string{},
			JointAccepts:  []string{},
			JointRequires: []string{},
			Name:          "--",
			Specs:         map[string]int{},
		},
	}
}

func parseVehicle(ctx context.Context, src archive.Handle, root *xmltree.Node, opts Options) *Vehicle {
	v := newVehicle()

	vehicleSorting(root, v)
	vehicleFlags(root, v)
	vehicleSpecs(root, v)
	vehicleFills(root, v)
	vehicleMotor(root, v)

	raw, ref, ok := firstImage(root, "image")
	if !ok {
		return v
	}
	v.IconOrig = &raw
	if opts.SkipIcons {
		return v
	}
	if ref.baseGame {
		v.IconBase = &ref.name
		return v
	}
	if bin, err := src.ReadBytes(ref.name); err == nil {
		if icon, ok := opts.converter().Convert(ctx, bin); ok {
			v.IconFile = &icon
		}
	}
	return v
}

func vehicleSorting(root *xmltree.Node, v *Vehicle) {
	v.Sorting.Name = optText(root, "name")
	v.Sorting.Brand = optText(root, "brand")
	v.Sorting.Category = optText(root, "category")
	v.Sorting.TypeDescription = optText(root, "typeDesc")
	v.Sorting.TypeName = optAttr(root, "type")
	v.Sorting.Year = optTextUint(root, "year")

	for _, combo := range root.All("combination") {
		if name, ok := combo.Attr("xmlFilename"); ok {
			v.Sorting.Combos = append(v.Sorting.Combos, name)
		}
	}
}

func vehicleFlags(root *xmltree.Node, v *Vehicle) {
	v.Flags.Beacons = root.First("beaconLights") != nil
	v.Flags.Color = root.First("baseMaterialConfiguration") != nil
	v.Flags.Enterable = root.First("enterable") != nil
	v.Flags.Lights = root.First("realLights") != nil
	v.Flags.Motorized = root.First("motorized") != nil
	v.Flags.Wheels = len(root.All("wheelConfiguration")) > 1
}

func vehicleSpecs(root *xmltree.Node, v *Vehicle) {
	if limit := root.First("speedLimit"); limit != nil {
		if raw, ok := limit.Attr("value"); ok {
			if value, err := parseUint(raw); err == nil {
				v.Specs.Specs["speedLimit"] = value
			}
		}
	}

	// The specs block holds one free form element per stat, with the
	// stat value as text. Combination entries live in the same block
	// but are not stats.
	if block := root.First("specs"); block != nil {
		for _, stat := range block.Children {
			if stat.Name == "combination" {
				continue
			}
			if value, err := parseUint(stat.Text()); err == nil {
				v.Specs.Specs[stat.Name] = value
			}
		}
	}

	v.Specs.Price = textUint(root, "price", 0)
	if name := optText(root, "name"); name != nil {
		v.Specs.Name = *name
	}

	for _, fn := range root.All("function") {
		if text := fn.Text(); text != "" {
			v.Specs.Functions = append(v.Specs.Functions, text)
		}
	}

	for _, part := range root.All("component") {
		if raw, ok := part.Attr("mass"); ok {
			if mass, err := parseUint(raw); err == nil {
				v.Specs.Weight += mass
			}
		}
	}

	v.Specs.JointAccepts = sortedAttrSet(root.All("attacherJoint"), "jointType")
	v.Specs.JointRequires = sortedAttrSet(root.All("inputAttacherJoint"), "jointType")
}

func vehicleFills(root *xmltree.Node, v *Vehicle) {
	total := 0
	for _, config := range root.All("fillUnitConfiguration") {
		sum := 0
		for _, unit := range config.All("fillUnit") {
			_, hasTypes := unit.Attr("fillTypes")
			_, hasCats := unit.Attr("fillTypeCategories")
			if !hasTypes && !hasCats {
				continue
			}
			if show, ok := unit.Attr("showInShop"); ok && show == "false" {
				continue
			}

			if raw, ok := unit.Attr("capacity"); ok {
				if capacity, err := parseUint(raw); err == nil {
					sum += capacity
				}
			}
			if cats, ok := unit.Attr("fillTypeCategories"); ok {
				v.FillSpray.FillCat = append(v.FillSpray.FillCat, splitLower(cats)...)
			}
			if types, ok := unit.Attr("fillTypes"); ok {
				v.FillSpray.FillType = append(v.FillSpray.FillType, splitLower(types)...)
			}

			// Configurations are exclusive; report the largest one.
			total = max(total, sum)
		}
	}
	v.FillSpray.FillLevel = total

	v.FillSpray.FillCat = sortDedup(v.FillSpray.FillCat)
	v.FillSpray.FillType = sortDedup(v.FillSpray.FillType)

	for _, spray := range root.All("sprayType") {
		entry := SprayType{Fills: []string{}}
		if usage := spray.Child("usageScales"); usage != nil {
			if width, ok := usage.AttrFloat("workingWidth"); ok {
				entry.Width = &width
			}
		}
		if raw, ok := spray.Attr("fillTypes"); ok {
			for _, fill := range strings.Split(raw, " ") {
				if fill == "unknown" {
					continue
				}
				entry.Fills = append(entry.Fills, strings.ToLower(fill))
			}
		}
		v.FillSpray.SprayTypes = append(v.FillSpray.SprayTypes, entry)
	}
}

// torqueEntry is one point of a motor's torque curve before scaling.
type torqueEntry struct {
	torque float64
	rpm    float64
}

func newTorqueEntry(node *xmltree.Node, motorRPM float64) torqueEntry {
	normRPM := attrFloatOr(node, "normRpm", 1)
	return torqueEntry{
		torque: attrFloatOr(node, "torque", 1),
		rpm:    attrFloatOr(node, "rpm", motorRPM*normRPM),
	}
}

// vehicleMotor walks the motor configurations and computes power and speed
// curves. Configurations routinely omit parts they share with an earlier
// one, so the torque curve, motor RPM, and transmission carry over until a
// configuration replaces them.
func vehicleMotor(root *xmltree.Node, v *Vehicle) {
	var torques []torqueEntry
	motorRPM := 1800.0
	transmissionName := ""
	minGearRatio := math.MaxFloat32

	for _, config := range root.All("motorConfiguration") {
		motor := config.Child("motor")
		if motor == nil {
			continue
		}

		if rpm, ok := motor.AttrFloat("maxRpm"); ok {
			motorRPM = rpm
		}
		scale := attrFloatOr(motor, "torqueScale", 1)

		if points := config.All("torque"); len(points) > 0 {
			torques = torques[:0]
			for _, point := range points {
				torques = append(torques, newTorqueEntry(point, motorRPM))
			}
		}

		if trans := config.Child("transmission"); trans != nil {
			minGearRatio = math.MaxFloat32

			if name, ok := trans.Attr("name"); ok {
				transmissionName = name
				if v.Motor.TransmissionType == nil {
					v.Motor.TransmissionType = &name
				}
			}

			axleRatio := attrFloatOr(trans, "axleRatio", 1)

			if raw, ok := trans.Attr("minForwardGearRatio"); ok {
				minGearRatio = axleRatio * floatOr(raw, 1)
			} else {
				for _, gear := range trans.ChildrenNamed("forwardGear") {
					if raw, ok := gear.Attr("gearRatio"); ok {
						minGearRatio = math.Min(minGearRatio, axleRatio*floatOr(raw, 1))
					} else if raw, ok := gear.Attr("maxSpeed"); ok {
						// Only the gear's top speed is known;
						// recover the ratio from the motor's top
						// RPM at that speed.
						speed := floatOr(raw, 1)
						minGearRatio = math.Min(minGearRatio, axleRatio*(motorRPM*math.Pi/(speed/3.6*30)))
					}
				}
			}
		}

		maxSpeed := 0
		if raw, ok := motor.Attr("maxForwardSpeed"); ok {
			if speed, err := parseUint(raw); err == nil {
				maxSpeed = speed
			}
		}

		name := "--"
		if label, ok := config.Attr("name"); ok {
			name = label
		}
		if transmissionName != "" {
			name += " " + transmissionName
		}
		if hp, ok := config.Attr("hp"); ok {
			name += " " + hp
		}

		entry := MotorEntry{
			Name:       name,
			HorsePower: []MotorValue{},
			MaxSpeed:   maxSpeed,
			SpeedKPH:   []MotorValue{},
			SpeedMPH:   []MotorValue{},
		}
		for _, tq := range torques {
			// kW at the curve point, expressed in metric horsepower.
			entry.HorsePower = append(entry.HorsePower,
				newMotorValue(tq.rpm, scale*(1.3596216*math.Pi*tq.rpm*tq.torque)/30))
			entry.SpeedKPH = append(entry.SpeedKPH,
				newMotorValue(tq.rpm, 3.6*((tq.rpm*math.Pi)/(30*minGearRatio))))
			entry.SpeedMPH = append(entry.SpeedMPH,
				newMotorValue(tq.rpm, 3.6*((tq.rpm*math.Pi)/(30*minGearRatio)*0.621371)))
		}
		v.Motor.Motors = append(v.Motor.Motors, entry)
	}

	if consumer := root.First("consumer"); consumer != nil {
		v.Motor.FuelType = optAttr(consumer, "fillType")
	}
}

func attrFloatOr(n *xmltree.Node, name string, def float64) float64 {
	if value, ok := n.AttrFloat(name); ok {
		return value
	}
	return def
}

func splitLower(raw string) []string {
	parts := strings.Split(raw, " ")
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = strings.ToLower(part)
	}
	return out
}

func sortedAttrSet(nodes []*xmltree.Node, attr string) []string {
	out := []string{}
	for _, node := range nodes {
		if value, ok := node.Attr(attr); ok {
			out = append(out, value)
		}
	}
	return sortDedup(out)
}
