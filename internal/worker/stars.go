package worker

import (
	"math"

	"portfolio/internal/domain/entity"
)

// starRating expands one fractional rating into five star descriptors:
// filled below the floor, half-filled between floor and the rating itself,
// empty from the ceiling up.
func starRating(in entity.StarRatingInput) entity.StarRating {
	floor := math.Floor(in.Rating)
	ceil := math.Ceil(in.Rating)

	stars := make([]entity.Star, 5)
	for i := range stars {
		pos := float64(i)
		stars[i] = entity.Star{
			Index:      i,
			Filled:     pos < floor,
			HalfFilled: floor <= pos && pos < in.Rating,
			Empty:      pos >= ceil,
		}
	}
	return entity.StarRating{ID: in.ID, Rating: in.Rating, Stars: stars}
}
