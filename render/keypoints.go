package render

import (
	"github.com/swdee/go-annodash/annotation"
	"gocv.io/x/gocv"
	"image"
)

/* COCO skeleton keypoints
0: Nose
1: Left Eye
2: Right Eye
3: Left Ear
4: Right Ear
5: Left Shoulder
6: Right Shoulder
7: Left Elbow
8: Right Elbow
9: Left Wrist
10: Right Wrist
11: Left Hip
12: Right Hip
13: Left Knee
14: Right Knee
15: Left Ankle
16: Right Ankle
*/

var (
	// skeleton defines the pose skeleton points to draw lines between.  The numbers
	// are paired, so (16,14) means draw line from right ankle to right knee.
	skeleton = [38]int{16, 14, 14, 12, 17, 15, 15, 13, 12, 13, 6, 12, 7, 13, 6, 7, 6, 8,
		7, 9, 8, 10, 9, 11, 2, 3, 1, 2, 1, 3, 2, 4, 3, 5, 4, 6, 5, 7}
	// keyPointsTotal is the number of keypoints in a skeleton
	keyPointsTotal = 17
)

// ObjectKeyPoints renders the visible keypoints of every object.  Objects
// with a full COCO pose also get their skeleton drawn.
func ObjectKeyPoints(img *gocv.Mat, objects []annotation.Object,
	lineThickness int) {

	for _, obj := range objects {

		keyPoint := obj.KeyPoints

		if len(keyPoint) == keyPointsTotal {
			// draw skeleton lines between visible joints
			for j := 0; j < len(skeleton)/2; j++ {
				a := keyPoint[skeleton[2*j]-1]
				b := keyPoint[skeleton[2*j+1]-1]

				if !a.Visible || !b.Visible {
					continue
				}

				gocv.Line(img, image.Pt(a.X, a.Y), image.Pt(b.X, b.Y), limbColors[j], lineThickness)
			}

			// draw circles at skeleton joints
			for j, kp := range keyPoint {
				if kp.Visible {
					gocv.Circle(img, image.Pt(kp.X, kp.Y), 3, keyPointColors[j], -1)
				}
			}

			continue
		}

		// other keypoint layouts are drawn in the object's class color
		for _, kp := range keyPoint {
			if kp.Visible {
				gocv.Circle(img, image.Pt(kp.X, kp.Y), 3, ClassColor(obj.Class), -1)
			}
		}
	}
}
