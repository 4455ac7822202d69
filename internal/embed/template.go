package embed

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>USA Globe Widget</title>
    <style>
      body { margin: 0; font-family: 'Inter', sans-serif; background: radial-gradient(circle at 20% 20%, {{.Theme.BackgroundA}} 0%, {{.Theme.BackgroundB}} 100%); color: #f8fafc; overflow: hidden; }
      #widget { position: relative; width: 100vw; height: 100vh; }
      .tooltip { position: absolute; background: rgba(15, 23, 42, 0.92); border-radius: 10px; padding: 8px 12px; font-size: 13px; pointer-events: none; color: #f8fafc; border: 1px solid rgba(148, 163, 184, 0.3); transform: translate(-50%, -120%); transition: opacity 0.15s; }
      .tooltip strong { display: block; color: {{.Theme.HighlightColor}}; }
    </style>
  </head>
  <body>
    <div id="widget">
      <div id="tooltip" class="tooltip" style="opacity:0"></div>
    </div>
    <script type="module">
      import * as THREE from 'https://cdn.jsdelivr.net/npm/three@{{.Three}}/build/three.module.js';
      const states = {{.States}};
      const container = document.getElementById('widget');
      const tooltip = document.getElementById('tooltip');
      const size = () => [container.clientWidth || window.innerWidth, container.clientHeight || window.innerHeight];
      const [width, height] = size();

      const scene = new THREE.Scene();
      const camera = new THREE.PerspectiveCamera({{num .CameraFOV}}, width / height, {{num .CameraNear}}, {{num .CameraFar}});
      camera.position.set(0, 0, {{num .CameraZ}});
      const renderer = new THREE.WebGLRenderer({ antialias: true, alpha: true });
      renderer.setPixelRatio(window.devicePixelRatio);
      renderer.setSize(width, height);
      container.appendChild(renderer.domElement);

      const light = new THREE.DirectionalLight(0xffffff, 1.15);
      light.position.set(5, 3, 5);
      scene.add(light);
      scene.add(new THREE.AmbientLight(0xffffff, 0.4));

      const globe = new THREE.Group();
      scene.add(globe);
      const body = new THREE.Mesh(
        new THREE.SphereGeometry({{num .GlobeRadius}}, 72, 72),
        new THREE.MeshPhongMaterial({ color: '{{.Theme.LandColor}}', emissive: '{{.Theme.OceanColor}}', emissiveIntensity: 0.25, shininess: 28 })
      );
      globe.add(body);
      const halo = new THREE.Mesh(
        new THREE.SphereGeometry({{num .HaloRadius}}, 64, 64),
        new THREE.MeshBasicMaterial({ color: '{{.Theme.OceanColor}}', transparent: true, opacity: 0.2, side: THREE.BackSide })
      );
      globe.add(halo);

      const pins = [];
      for (const state of states) {
        const material = new THREE.MeshStandardMaterial({ color: '{{.Theme.PinColor}}', emissive: '{{.Theme.PinColor}}', emissiveIntensity: {{num .PinEmissive}}, roughness: 0.3, metalness: 0.2 });
        const cone = new THREE.Mesh(new THREE.ConeGeometry({{num .ConeRadius}}, {{num .ConeHeight}}, 16), material);
        cone.rotation.x = Math.PI / 2;
        cone.position.z = {{num .ConeOffset}};
        const ball = new THREE.Mesh(new THREE.SphereGeometry({{num .BallRadius}}, 16, 16), material.clone());
        const pin = new THREE.Group();
        pin.add(cone, ball);
        pin.position.fromArray(state.position);
        pin.lookAt(0, 0, 0);
        cone.userData.state = state;
        ball.userData.state = state;
        pins.push(cone, ball);
        globe.add(pin);
      }

      const raycaster = new THREE.Raycaster();
      const pointer = new THREE.Vector2();
      const hide = () => { tooltip.style.opacity = 0; };
      container.addEventListener('pointermove', (event) => {
        const rect = renderer.domElement.getBoundingClientRect();
        pointer.x = ((event.clientX - rect.left) / rect.width) * 2 - 1;
        pointer.y = -((event.clientY - rect.top) / rect.height) * 2 + 1;
        raycaster.setFromCamera(pointer, camera);
        const hits = raycaster.intersectObjects(pins, false);
        if (!hits.length) {
          hide();
          return;
        }
        const state = hits[0].object.userData.state;
        const title = document.createElement('strong');
        title.textContent = state.name;
        const capital = document.createElement('div');
        capital.textContent = state.capital;
        tooltip.replaceChildren(title, capital);
        tooltip.style.left = (event.clientX - rect.left) + 'px';
        tooltip.style.top = (event.clientY - rect.top) + 'px';
        tooltip.style.opacity = 1;
      });
      container.addEventListener('pointerleave', hide);

      window.addEventListener('resize', () => {
        const [w, h] = size();
        camera.aspect = w / h;
        camera.updateProjectionMatrix();
        renderer.setSize(w, h);
      });

      const animate = () => {
        globe.rotation.y += {{num .RotateStep}};
        renderer.render(scene, camera);
        requestAnimationFrame(animate);
      };
      animate();
    </script>
  </body>
</html>
`
