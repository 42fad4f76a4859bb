package services

import (
	"fmt"
	"strconv"
	"strings"

	"valuation/models"
	"valuation/utils"
)

const autoFillMessage = "Enter units per floor in comma separated format first"

// AutoFillFloors turns "2,2,1" into Floor 1..n with those unit counts and sets TotalUnits to
// their sum. Entries that are not whole numbers count as 0 units.
func AutoFillFloors(d models.PropertyDetails) (models.PropertyDetails, error) {
	if strings.TrimSpace(d.UnitsPerFloor) == "" {
		return d, &MissingFieldsError{Message: autoFillMessage, Fields: []string{"units_per_floor"}}
	}
	var floors models.KeyedList[models.Floor]
	total := 0
	for i, part := range strings.Split(d.UnitsPerFloor, ",") {
		units, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || units < 0 {
			units = 0
		}
		total += units
		floors, _ = floors.Add(models.Floor{FloorName: fmt.Sprintf("Floor %d", i+1), Units: units})
	}
	d.Floors = floors
	d.TotalUnits = total
	d.NumFloors = floors.Len()
	return withProgress(d), nil
}

// withProgress keeps Progress present exactly while the property is under construction.
func withProgress(d models.PropertyDetails) models.PropertyDetails {
	under := d.StageConstruction == models.StageUnderConstruction
	for _, key := range d.Floors.Keys() {
		d.Floors, _ = d.Floors.Update(key, func(f models.Floor) models.Floor {
			switch {
			case under && f.Progress == nil:
				zero := 0
				f.Progress = &zero
			case !under:
				f.Progress = nil
			}
			return f
		})
	}
	return d
}

func SetPropertyDetailsField(d models.PropertyDetails, field string, raw any) (models.PropertyDetails, error) {
	switch field {
	case "stage_construction":
		d.StageConstruction = utils.ToString(raw)
		return withProgress(d), nil
	case "coordinates":
		d.Coordinates = utils.ToString(raw)
	case "nearby_landmark":
		d.NearbyLandmark = utils.ToString(raw)
	case "nearby_rail":
		d.NearbyRail = utils.ToString(raw)
	case "rail_distance":
		d.RailDistance = utils.ToFloat(raw)
	case "nearby_bus":
		d.NearbyBus = utils.ToString(raw)
	case "bus_distance":
		d.BusDistance = utils.ToFloat(raw)
	case "nearby_hospital":
		d.NearbyHospital = utils.ToString(raw)
	case "hospital_distance":
		d.HospitalDistance = utils.ToFloat(raw)
	case "distance_city":
		d.DistanceCity = utils.ToFloat(raw)
	case "num_floors":
		d.NumFloors = utils.ToInt(raw)
	case "units_per_floor":
		d.UnitsPerFloor = utils.ToString(raw)
	case "total_units":
		d.TotalUnits = utils.ToInt(raw)
	case "internal_composition":
		d.InternalComposition = utils.ToString(raw)
	case "occupancy_status":
		d.OccupancyStatus = utils.ToString(raw)
	case "rental_value":
		d.RentalValue = utils.ToString(raw)
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return d, nil
}

func SetFloorField(f models.Floor, field string, raw any) (models.Floor, error) {
	switch field {
	case "floor_name":
		f.FloorName = utils.ToString(raw)
	case "units":
		f.Units = utils.ToInt(raw)
	case "occupancy":
		f.Occupancy = utils.ToString(raw)
	case "rental_value":
		f.RentalValue = utils.ToString(raw)
	case "progress":
		p := utils.ToInt(raw)
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		f.Progress = &p
	default:
		return f, fmt.Errorf("%w: floor %q", ErrUnknownField, field)
	}
	return f, nil
}
