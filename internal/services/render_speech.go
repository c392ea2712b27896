package services

import (
	"bus-schedule-skill/internal/domain"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Spoken clock time: 12-hour, no leading zero on the hour ("9:05 AM").
const spokenTimeLayout = "3:04 PM"

const GenericErrorSpeech = "Sorry, there was an error processing your request. Please try again later."

// RenderNoBusesSpeech is spoken when the route has no upcoming departures.
func RenderNoBusesSpeech(routeName, destination string) string {
	return fmt.Sprintf("Sorry, there are no upcoming %s buses to %s at the moment.", routeName, destination)
}

// RenderNextBusesSpeech lists departures in the given order, numbering them
// from 1. An empty sequence renders the no-buses sentence.
func RenderNextBusesSpeech(buses domain.NextBuses, routeName, destination string, loc *time.Location) string {
	if len(buses) == 0 {
		return RenderNoBusesSpeech(routeName, destination)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The next buses to %s are scheduled as follows:", destination)

	for i, bus := range buses {
		at := bus.DepartureTime
		if loc != nil {
			at = at.In(loc)
		}
		fmt.Fprintf(&b, " Bus %d at %s.", i+1, at.Format(spokenTimeLayout))
	}

	return b.String()
}

// RenderFetchFailureSpeech speaks the message of the typed fetch/data error
// in err's chain. Those messages are built by this service and contain no
// request URL or credential.
func RenderFetchFailureSpeech(err error) string {
	return fmt.Sprintf(
		"Sorry, I couldn't retrieve the bus schedule due to an error: %s. Please try again later.",
		failureMessage(err),
	)
}

func failureMessage(err error) string {
	var fe *domain.ScheduleFetchError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	var de *domain.ScheduleDataError
	if errors.As(err, &de) {
		return de.Error()
	}
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
