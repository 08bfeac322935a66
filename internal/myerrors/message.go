package myerrors

import "strconv"

func OutOfRangeMessage(maxPage int) string {
	return "Only numbers from 1 to " + strconv.Itoa(maxPage) + " are accepted"
}
