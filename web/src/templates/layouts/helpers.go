package layouts

// CalculateTitle joins the page title and the site name.
func CalculateTitle(title, siteName string) string {
	switch {
	case title == "":
		return siteName
	case siteName == "" || title == siteName:
		return title
	default:
		return title + " - " + siteName
	}
}
