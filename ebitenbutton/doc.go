// Package ebitenbutton runs a circlebutton.Button inside an [Ebitengine]
// game.
//
// [Widget] implements ebiten.Game: it reads the left mouse button and the
// first touch that lands on the circle, feeds them to the button, advances
// the animation once per tick, and draws through [Canvas].
//
//	w, err := ebitenbutton.NewWidget(btn)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = ebitenbutton.Run(w, ebitenbutton.RunConfig{Title: "Hold", Width: 360, Height: 640})
//
// [Ebitengine]: https://ebitengine.org
package ebitenbutton
