package itinerary

const hotelSystemInstruction = `You are a hotel analyst. You compare hotel listings
on price, rating, review volume and location, and you answer in concise markdown.`

const hotelPrompt = `Here are the available hotels:

%s

Recommend the single best hotel for a leisure traveller. Give the hotel name,
a short justification, and one runner-up.`

const itinerarySystemInstruction = `You are a travel planner. You write practical
day-by-day itineraries in markdown with a heading per day.`

const itineraryPrompt = `Create a %d-day itinerary for %s.

Flight details:
%s

Accommodation:
%s

Plan around the arrival and departure times, keep each day realistic, and
include %d day sections.`
