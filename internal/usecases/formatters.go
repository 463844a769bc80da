package usecases

import (
	"fmt"
	"sort"
	"strings"

	"github.com/foodiespot/concierge/internal/domain"
)

// formatters.go renders domain results into the user-facing text blocks the
// tools return. Formatting is pure and kept separate from the domain calls.

// formatRestaurantList renders search results as a numbered markdown list.
func formatRestaurantList(restaurants []domain.Restaurant) string {
	if len(restaurants) == 0 {
		return "I couldn't find any restaurants matching your criteria."
	}

	var b strings.Builder
	b.WriteString("Here are some restaurants that match your criteria:\n\n")
	for i, restaurant := range restaurants {
		fmt.Fprintf(&b, "%d. **%s** - %s\n", i+1, restaurant.Name, restaurant.Cuisine)
		fmt.Fprintf(&b, "   📍 %s | 💰 %s | ⭐ %.1f\n", restaurant.Location, domain.PriceTag(restaurant.PriceRange), restaurant.Rating)
		fmt.Fprintf(&b, "   %s\n\n", truncate(restaurant.Description, 100))
	}
	return b.String()
}

// formatRestaurantDetails renders a full detail card for one restaurant.
func formatRestaurantDetails(restaurant domain.Restaurant) string {
	weekday := restaurant.Hours[domain.DayKind_Weekday]
	weekend := restaurant.Hours[domain.DayKind_Weekend]

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", restaurant.Name)
	fmt.Fprintf(&b, "**Cuisine:** %s\n", restaurant.Cuisine)
	fmt.Fprintf(&b, "**Location:** %s\n", restaurant.Location)
	fmt.Fprintf(&b, "**Price Range:** %s\n", domain.PriceTag(restaurant.PriceRange))
	fmt.Fprintf(&b, "**Rating:** %.1f stars\n", restaurant.Rating)
	fmt.Fprintf(&b, "**Capacity:** %d guests\n\n", restaurant.Capacity)
	fmt.Fprintf(&b, "**Hours:**\n- Weekdays: %s - %s\n- Weekends: %s - %s\n\n", weekday.Open, weekday.Close, weekend.Open, weekend.Close)
	fmt.Fprintf(&b, "**Description:**\n%s\n", restaurant.Description)
	return b.String()
}

// formatAvailableTimes renders open slots grouped by hour in 12-hour clock.
func formatAvailableTimes(date string, slots []string) string {
	if len(slots) == 0 {
		return fmt.Sprintf("I'm sorry, there are no available time slots for %s.", date)
	}

	hourGroups := map[int][]string{}
	for _, slot := range slots {
		minutes, err := domain.ParseClockTime(slot)
		if err != nil {
			continue
		}
		hour := minutes / 60
		hourGroups[hour] = append(hourGroups[hour], slot)
	}

	hours := make([]int, 0, len(hourGroups))
	for hour := range hourGroups {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	var b strings.Builder
	fmt.Fprintf(&b, "Available time slots for %s:\n\n", date)
	for _, hour := range hours {
		group := hourGroups[hour]
		sort.Strings(group)
		display := make([]string, len(group))
		for i, slot := range group {
			display[i] = formatTwelveHour(slot)
		}
		fmt.Fprintf(&b, "- %s\n", strings.Join(display, ", "))
	}
	return b.String()
}

// formatReservationConfirmation renders the booking confirmation block,
// enriched with restaurant details.
func formatReservationConfirmation(reservation domain.Reservation, restaurant domain.Restaurant) string {
	var b strings.Builder
	b.WriteString("# Reservation Confirmed!\n\n")
	fmt.Fprintf(&b, "Your reservation at **%s** has been confirmed.\n\n", restaurant.Name)
	b.WriteString("**Details:**\n")
	fmt.Fprintf(&b, "- **Date:** %s\n", reservation.Date)
	fmt.Fprintf(&b, "- **Time:** %s\n", formatTwelveHour(reservation.Time))
	fmt.Fprintf(&b, "- **Party Size:** %d people\n", reservation.PartySize)
	fmt.Fprintf(&b, "- **Reservation ID:** %s\n\n", reservation.ID)
	b.WriteString("**Restaurant Information:**\n")
	fmt.Fprintf(&b, "- **Address:** %s\n", restaurant.Location)
	fmt.Fprintf(&b, "- **Cuisine:** %s\n", restaurant.Cuisine)
	fmt.Fprintf(&b, "- **Price Range:** %s\n\n", domain.PriceTag(restaurant.PriceRange))
	b.WriteString("Thank you for choosing FoodieSpot! If you need to modify or cancel your reservation, please use your reservation ID.")
	return b.String()
}

// formatTwelveHour converts a canonical "HH:MM" time to 12-hour display.
// Unparseable input is returned as-is.
func formatTwelveHour(clockTime string) string {
	minutes, err := domain.ParseClockTime(clockTime)
	if err != nil {
		return clockTime
	}

	hour := minutes / 60
	minute := minutes % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	if hour > 12 {
		hour -= 12
	}
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
