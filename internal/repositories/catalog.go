package repositories

import "github.com/Danik911/Boruto-server/internal/models"

const CatalogPages = 5

// BorutoHeroes is the reference catalog in page order, three heroes per page.
var BorutoHeroes = []models.Hero{
	{Id: 1, Name: "Sasuke", Image: "/images/sasuke.jpg"},
	{Id: 2, Name: "Naruto", Image: "/images/naruto.jpg"},
	{Id: 3, Name: "Sakura", Image: "/images/sakura.jpg"},

	{Id: 4, Name: "Boruto", Image: "/images/boruto.jpg"},
	{Id: 5, Name: "Sarada", Image: "/images/sarada.jpg"},
	{Id: 6, Name: "Mitsuki", Image: "/images/mitsuki.jpg"},

	{Id: 7, Name: "Kawaki", Image: "/images/kawaki.jpg"},
	{Id: 8, Name: "Orochimaru", Image: "/images/orochimaru.jpg"},
	{Id: 9, Name: "Kakashi", Image: "/images/kakashi.jpg"},

	{Id: 10, Name: "Isshiki", Image: "/images/isshiki.jpg"},
	{Id: 11, Name: "Momoshiki", Image: "/images/momoshiki.jpg"},
	{Id: 12, Name: "Urashiki", Image: "/images/urashiki.jpg"},

	{Id: 13, Name: "Kinshiki", Image: "/images/kinshiki.jpg"},
	{Id: 14, Name: "Jigen", Image: "/images/jigen.jpg"},
	{Id: 15, Name: "Kashin Koji", Image: "/images/kashin_koji.jpg"},
}
