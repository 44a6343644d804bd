package listing

// staticReviews is served for every listing id, including unknown ones.
var staticReviews = []Review{
	{ID: 1, User: "Alice", Date: "October 2023", Text: "Absolutely stunning place! The views were incredible and the host was super responsive."},
	{ID: 2, User: "Michael", Date: "September 2023", Text: "Great location, very clean. Would definitely stay again."},
	{ID: 3, User: "Sofia", Date: "August 2023", Text: "Perfect for our family vacation. The pool was a hit with the kids!"},
	{ID: 4, User: "David", Date: "July 2023", Text: "A bit smaller than expected, but very cozy and well-equipped."},
}

func reviews() []Review {
	out := make([]Review, len(staticReviews))
	copy(out, staticReviews)
	return out
}
